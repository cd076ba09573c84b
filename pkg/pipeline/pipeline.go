/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package pipeline wires the remote client, aggregator, poller, trigger
// manager, event sink and reporting API into one runnable service.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/carverauto/sensorpoll/pkg/aggregator"
	"github.com/carverauto/sensorpoll/pkg/api"
	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/natsutil"
	"github.com/carverauto/sensorpoll/pkg/poller"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/carverauto/sensorpoll/pkg/trigger"
	"github.com/carverauto/sensorpoll/pkg/uart"
)

// Pipeline owns every component of a sensorpoll process. It implements
// lifecycle.Service.
type Pipeline struct {
	config Config
	logger logger.Logger

	client     *remote.Client
	aggregator *aggregator.Aggregator
	poller     *poller.Poller
	trigger    *trigger.Manager
	api        *api.Server
	publisher  *natsutil.EventPublisher

	mu          sync.Mutex
	retryCancel context.CancelFunc
	retryDone   chan struct{}
}

type options struct {
	httpClient *http.Client
	clock      poller.Clock
}

// Option customizes construction, mainly for tests.
type Option func(*options)

// WithHTTPClient sets the client used to reach the gateway.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithClock replaces wall time in the poller.
func WithClock(c poller.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New builds every component. When NATS is enabled it connects here so the
// trigger manager can be constructed with its publisher.
func New(ctx context.Context, cfg Config, log logger.Logger, opts ...Option) (*Pipeline, error) {
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var clientOpts []remote.Option
	if o.httpClient != nil {
		clientOpts = append(clientOpts, remote.WithHTTPClient(o.httpClient))
	}

	client, err := remote.NewClient(cfg.Remote, log, clientOpts...)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		config: cfg,
		logger: log,
		client: client,
	}

	p.aggregator = aggregator.New(client, cfg.Aggregator, log)

	// the trigger manager owns the scheduled-scan ceiling
	pollCfg := cfg.Poller
	pollCfg.MaxScanInterval = cfg.Trigger.MaxScanInterval
	p.poller = poller.New(client, p.aggregator, pollCfg, o.clock, log)

	managerOpts := []trigger.Option{
		trigger.WithCallbacks(uart.NewRemoteCallbacks(client, log)),
	}

	if cfg.NATS != nil && cfg.NATS.Enabled {
		publisher, err := natsutil.Connect(ctx, cfg.NATS, log)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect event sink: %w", err)
		}

		p.publisher = publisher
		managerOpts = append(managerOpts, trigger.WithPublisher(publisher))
	}

	p.trigger = trigger.New(p.poller, cfg.Trigger, log, managerOpts...)

	if cfg.API.Enabled {
		p.api = api.NewServer(cfg.API, log,
			api.WithRemote(client),
			api.WithSummaries(p.aggregator),
			api.WithPoller(p.poller),
			api.WithTrigger(p.trigger),
		)
	}

	return p, nil
}

// Poller exposes the polling service.
func (p *Pipeline) Poller() *poller.Poller {
	return p.poller
}

// Trigger exposes the trigger manager.
func (p *Pipeline) Trigger() *trigger.Manager {
	return p.trigger
}

// API returns the reporting server, or nil when disabled.
func (p *Pipeline) API() *api.Server {
	return p.api
}

// Start brings up the reporting API and the trigger manager. If the gateway
// is not reachable yet, starting the trigger manager is retried in the
// background with exponential backoff until it succeeds or Stop is called.
func (p *Pipeline) Start(ctx context.Context) error {
	if p.api != nil {
		if err := p.api.Start(ctx); err != nil {
			return fmt.Errorf("failed to start reporting API: %w", err)
		}
	}

	_, err := p.trigger.Start(ctx)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, poller.ErrRemoteUnhealthy):
		p.logger.Warn().Err(err).Msg("Gateway unreachable, retrying start in background")
		p.retryStart()

		return nil
	default:
		return err
	}
}

func (p *Pipeline) retryStart() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.mu.Lock()
	p.retryCancel = cancel
	p.retryDone = done
	p.mu.Unlock()

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = time.Duration(p.config.StartRetryMax)
	b.InitialInterval = min(defaultStartRetryInitial, b.MaxInterval)

	go func() {
		defer close(done)

		operation := func() (bool, error) {
			started, err := p.trigger.Start(ctx)
			if err != nil && !errors.Is(err, poller.ErrRemoteUnhealthy) {
				return false, backoff.Permanent(err)
			}

			return started, err
		}

		_, err := backoff.Retry(ctx, operation,
			backoff.WithBackOff(b),
			backoff.WithMaxElapsedTime(0),
			backoff.WithNotify(func(err error, next time.Duration) {
				p.logger.Debug().Err(err).Dur("next_attempt", next).Msg("Pipeline start attempt failed")
			}),
		)

		switch {
		case err == nil:
			p.logger.Info().Msg("Gateway reachable, pipeline started")
		case errors.Is(err, context.Canceled):
		default:
			p.logger.Error().Err(err).Msg("Giving up starting pipeline")
		}
	}()
}

// Stop shuts components down in reverse dependency order. Every step runs
// even if an earlier one fails; the errors are joined.
func (p *Pipeline) Stop(ctx context.Context) error {
	var errs []error

	p.mu.Lock()
	cancel, done := p.retryCancel, p.retryDone
	p.retryCancel, p.retryDone = nil, nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	if p.api != nil {
		if err := p.api.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("reporting API: %w", err))
		}
	}

	if _, err := p.trigger.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("trigger manager: %w", err))
	}

	if _, err := p.poller.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("poller: %w", err))
	}

	if p.publisher != nil {
		if err := p.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("event sink: %w", err))
		}
	}

	p.client.Close()

	return errors.Join(errs...)
}
