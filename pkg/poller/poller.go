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

// Package poller watches the remote gateway and emits trigger events when
// its UART data changes in ways that warrant a scan.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/google/uuid"
)

const defaultManualMessage = "manual trigger"

type subscription struct {
	id      uint64
	name    string
	handler Subscriber
}

// Poller runs a single background loop against the gateway.
type Poller struct {
	gateway    Gateway
	summarizer Summarizer
	clock      Clock
	logger     logger.Logger

	// lifecycleMu serializes Start and Stop.
	lifecycleMu sync.Mutex

	mu                  sync.Mutex
	config              Config
	running             bool
	startedAt           time.Time
	cancel              context.CancelFunc
	exited              chan struct{}
	connectionLostAt    time.Time
	lastSuccessfulCheck time.Time
	lastScheduledScan   time.Time
	knownMACs           map[string]struct{}
	lastSummary         map[string]models.ChannelSummary
	stats               stats
	subscribers         []subscription
	nextSubscriberID    uint64

	reloadCh chan time.Duration
	events   chan models.TriggerEvent
}

type stats struct {
	totalChecks      int64
	successfulChecks int64
	connectionErrors int64
	triggersSent     int64
	triggersDropped  int64
	macsDiscovered   map[string]struct{}
	lastTriggerTime  time.Time
}

// New creates a stopped poller. A nil clock uses wall time.
func New(gateway Gateway, summarizer Summarizer, cfg Config, clock Clock, log logger.Logger) *Poller {
	if clock == nil {
		clock = realClock{}
	}

	cfg.ApplyDefaults()
	cfg.clamp()

	return &Poller{
		gateway:    gateway,
		summarizer: summarizer,
		clock:      clock,
		logger:     log,
		config:     cfg,
		knownMACs:  make(map[string]struct{}),
		stats:      stats{macsDiscovered: make(map[string]struct{})},
		reloadCh:   make(chan time.Duration, 1),
		events:     make(chan models.TriggerEvent, cfg.EventQueueSize),
	}
}

// Start health-checks the gateway and, if it answers, launches the poll
// loop. It returns false without error when the loop is already running.
// The loop outlives ctx; use Stop to end it.
func (p *Poller) Start(ctx context.Context) (bool, error) {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	if p.IsRunning() {
		p.logger.Warn().Msg("Poller already running")
		return false, nil
	}

	if health := p.gateway.HealthCheck(ctx); !health.Succeeded() {
		p.logger.Error().Str("error", health.ErrorMessage()).Msg("Gateway health check failed, poller not started")
		return false, ErrRemoteUnhealthy
	}

	// a reload queued while stopped is superseded by the current config
	select {
	case <-p.reloadCh:
	default:
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	exited := make(chan struct{})

	p.mu.Lock()
	interval := time.Duration(p.config.PollInterval)
	p.running = true
	p.startedAt = p.clock.Now()
	p.cancel = cancel
	p.exited = exited
	p.stats = stats{macsDiscovered: make(map[string]struct{})}
	p.mu.Unlock()

	ticker := p.clock.Ticker(interval)

	go p.run(loopCtx, ticker, exited)

	p.logger.Info().Dur("interval", interval).Msg("Poller started")

	return true, nil
}

// Stop cancels the loop and waits for it to exit, bounded by StopTimeout
// and ctx. On timeout the poller is still running.
func (p *Poller) Stop(ctx context.Context) (bool, error) {
	p.lifecycleMu.Lock()
	defer p.lifecycleMu.Unlock()

	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		p.logger.Warn().Msg("Poller already stopped")

		return false, nil
	}

	cancel, exited := p.cancel, p.exited
	timeout := time.Duration(p.config.StopTimeout)
	p.mu.Unlock()

	cancel()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-exited:
	case <-timer.C:
		p.logger.Error().Dur("timeout", timeout).Msg("Poll loop did not exit in time")
		return false, ErrStopTimeout
	case <-ctx.Done():
		return false, ctx.Err()
	}

	p.mu.Lock()
	p.running = false
	p.cancel = nil
	p.exited = nil
	p.mu.Unlock()

	p.logger.Info().Msg("Poller stopped")

	return true, nil
}

// IsRunning reports whether the loop is active.
func (p *Poller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.running
}

func (p *Poller) run(ctx context.Context, ticker Ticker, exited chan struct{}) {
	defer close(exited)

	defer func() {
		ticker.Stop()
	}()

	p.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}

			p.check(ctx)
		case newInterval := <-p.reloadCh:
			ticker.Stop()
			ticker = p.clock.Ticker(newInterval)
			p.logger.Info().Dur("interval", newInterval).Msg("Poll interval hot-reloaded")
		}
	}
}

// Subscribe registers s for every future event. The returned func removes it.
func (p *Poller) Subscribe(name string, s Subscriber) func() {
	p.mu.Lock()
	p.nextSubscriberID++
	id := p.nextSubscriberID
	p.subscribers = append(p.subscribers, subscription{id: id, name: name, handler: s})
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		for i, sub := range p.subscribers {
			if sub.id == id {
				p.subscribers = append(p.subscribers[:i:i], p.subscribers[i+1:]...)
				return
			}
		}
	}
}

// TriggerManual emits a manual_trigger event through the normal path.
func (p *Poller) TriggerManual(ctx context.Context, message string) models.TriggerEvent {
	if message == "" {
		message = defaultManualMessage
	}

	event := p.newEvent(models.ReasonManualTrigger, p.clock.Now(), message)
	p.emit(ctx, event)

	return event
}

// PendingEvents drains the event queue.
func (p *Poller) PendingEvents() []models.TriggerEvent {
	var events []models.TriggerEvent

	for {
		select {
		case event := <-p.events:
			events = append(events, event)
		default:
			return events
		}
	}
}

func (p *Poller) newEvent(reason models.TriggerReason, now time.Time, message string) models.TriggerEvent {
	return models.TriggerEvent{
		ID:        uuid.NewString(),
		Reason:    reason,
		Timestamp: now,
		Message:   message,
	}
}

// emit queues the event for draining and hands it to every subscriber on
// the calling goroutine.
func (p *Poller) emit(ctx context.Context, event models.TriggerEvent) {
	p.mu.Lock()
	p.stats.triggersSent++
	p.stats.lastTriggerTime = event.Timestamp
	subs := make([]subscription, len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.Unlock()

	recordTrigger(ctx, event.Reason)

	select {
	case p.events <- event:
	default:
		p.mu.Lock()
		p.stats.triggersDropped++
		p.mu.Unlock()

		recordDropped(ctx, event.Reason)
		p.logger.Warn().Str("reason", string(event.Reason)).Msg("Trigger event queue full, dropping event")
	}

	p.logger.Info().
		Str("event_id", event.ID).
		Str("reason", string(event.Reason)).
		Strs("mac_ids", event.MACIDs).
		Msg(event.Message)

	for _, sub := range subs {
		p.dispatch(ctx, sub, event)
	}
}

func (p *Poller) dispatch(ctx context.Context, sub subscription, event models.TriggerEvent) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Interface("panic", r).
				Str("subscriber", sub.name).
				Str("event_id", event.ID).
				Msg("Trigger subscriber panicked")
		}
	}()

	if err := sub.handler.HandleTrigger(ctx, event); err != nil {
		p.logger.Error().
			Err(err).
			Str("subscriber", sub.name).
			Str("event_id", event.ID).
			Msg("Trigger subscriber failed")
	}
}
