package api

//go:generate mockgen -destination=mock_api.go -package=api github.com/carverauto/sensorpoll/pkg/api RemoteService,SummaryService,PollerService,TriggerService

import (
	"context"

	"github.com/carverauto/sensorpoll/pkg/aggregator"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/poller"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/carverauto/sensorpoll/pkg/trigger"
)

// RemoteService is the slice of remote.Client the API exposes.
type RemoteService interface {
	ConnectionStatus() models.ConnectionStatus
	ClearCache()
	Config() remote.Config
	UpdateConfig(cfg remote.Config) error
}

// SummaryService is implemented by aggregator.Aggregator.
type SummaryService interface {
	UARTSummary(ctx context.Context) models.UARTSummary
	CompleteStatus(ctx context.Context) models.CompleteStatus
	Config() aggregator.Config
	UpdateConfig(cfg aggregator.Config)
}

// PollerService is implemented by poller.Poller.
type PollerService interface {
	IsRunning() bool
	Status() poller.Status
	PendingEvents() []models.TriggerEvent
	Config() poller.Config
	UpdateConfig(cfg poller.Config)
}

// TriggerService is implemented by trigger.Manager.
type TriggerService interface {
	IsActive() bool
	Status() trigger.Status
	Config() trigger.Config
	UpdateConfig(cfg trigger.Config) error
	ManualScan(ctx context.Context, message string) (models.TriggerEvent, error)
}
