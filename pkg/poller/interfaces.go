//go:generate mockgen -destination=mock_poller.go -package=poller github.com/carverauto/sensorpoll/pkg/poller Clock,Ticker

package poller

import (
	"context"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/remote"
)

// Clock abstracts time-related operations.
type Clock interface {
	Now() time.Time
	Ticker(d time.Duration) Ticker
}

// Ticker abstracts the ticker behavior.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Summarizer produces the UART snapshot diffed on every poll.
type Summarizer interface {
	UARTSummary(ctx context.Context) models.UARTSummary
}

// Gateway is the connectivity view of the remote client.
type Gateway interface {
	HealthCheck(ctx context.Context) remote.Result
	IsConnected() bool
}

// Subscriber receives every emitted trigger event in registration order.
type Subscriber interface {
	HandleTrigger(ctx context.Context, event models.TriggerEvent) error
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(ctx context.Context, event models.TriggerEvent) error

func (f SubscriberFunc) HandleTrigger(ctx context.Context, event models.TriggerEvent) error {
	return f(ctx, event)
}
