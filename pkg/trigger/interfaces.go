//go:generate mockgen -destination=mock_trigger.go -package=trigger github.com/carverauto/sensorpoll/pkg/trigger EventSource,Publisher

package trigger

import (
	"context"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/poller"
)

// EventSource is the polling service as seen by the trigger manager.
type EventSource interface {
	IsRunning() bool
	Start(ctx context.Context) (bool, error)
	Subscribe(name string, s poller.Subscriber) func()
	TriggerManual(ctx context.Context, message string) models.TriggerEvent
	SetMaxScanInterval(d time.Duration)
}

// Publisher receives every decision and scan outcome. Failures are logged
// and never affect scanning.
type Publisher interface {
	PublishDecision(ctx context.Context, decision models.TriggerDecision) error
	PublishScan(ctx context.Context, result models.ScanResult) error
}
