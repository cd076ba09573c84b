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

// Package trigger decides which poller events launch a UART scan and runs
// at most one scan at a time, adapting its pacing to recent results.
package trigger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/uart"
)

const subscriberName = "trigger-manager"

// Skip reasons reported in decisions.
const (
	SkipInactive       = "manager_inactive"
	SkipScanInProgress = "scan_in_progress"
	SkipRateLimited    = "rate_limited"
	SkipNonPriority    = "non_priority_mac_low_activity"
)

// Manager admits trigger events and owns the scan worker.
type Manager struct {
	source    EventSource
	publisher Publisher
	logger    logger.Logger
	now       func() time.Time

	// scanning is claimed by compare-and-set on admission and released by
	// the worker after completion bookkeeping.
	scanning atomic.Bool

	lifecycleMu sync.Mutex
	wg          sync.WaitGroup
	// stopDone is set while a timed-out Stop still waits on the worker.
	// Guarded by lifecycleMu.
	stopDone chan struct{}

	mu           sync.RWMutex
	active       bool
	runCtx       context.Context
	runCancel    context.CancelFunc
	unsubscribe  func()
	config       Config
	callbacks    uart.Callbacks
	adaptive     models.AdaptiveState
	stats        models.ScanStatistics
	lastScanTime time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithPublisher forwards decisions and scan results to p.
func WithPublisher(p Publisher) Option {
	return func(m *Manager) {
		m.publisher = p
	}
}

// WithCallbacks sets the initial UART callbacks.
func WithCallbacks(cb uart.Callbacks) Option {
	return func(m *Manager) {
		m.callbacks = cb
	}
}

// New creates an inactive manager fed by source.
func New(source EventSource, cfg Config, log logger.Logger, opts ...Option) *Manager {
	cfg.ApplyDefaults()

	m := &Manager{
		source: source,
		logger: log,
		now:    time.Now,
		config: cfg,
		adaptive: models.AdaptiveState{
			BaseInterval:    time.Duration(cfg.MinScanInterval),
			CurrentInterval: time.Duration(cfg.MinScanInterval),
			ActivityLevel:   models.ActivityNormal,
		},
		stats: models.ScanStatistics{History: []models.ScanResult{}},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start activates the manager, starting the poller first if it is not
// running. It returns false without error when already active.
func (m *Manager) Start(ctx context.Context) (bool, error) {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	if m.IsActive() {
		m.logger.Warn().Msg("Trigger manager already active")
		return false, nil
	}

	if m.stopPendingLocked() {
		return false, ErrStopPending
	}

	if !m.source.IsRunning() {
		if _, err := m.source.Start(ctx); err != nil {
			return false, fmt.Errorf("failed to start poller: %w", err)
		}
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	m.mu.Lock()
	m.active = true
	m.runCtx = runCtx
	m.runCancel = cancel
	m.mu.Unlock()

	unsubscribe := m.source.Subscribe(subscriberName, m)

	m.mu.Lock()
	m.unsubscribe = unsubscribe
	m.mu.Unlock()

	m.logger.Info().Msg("Trigger manager started")

	return true, nil
}

// Stop deactivates the manager, cancels an in-flight scan and waits for the
// worker to finish its bookkeeping, bounded by StopTimeout and ctx. The
// poller is left running. After ErrScanStopTimeout the manager stays in a
// stopping state; calling Stop again resumes waiting on the same worker.
func (m *Manager) Stop(ctx context.Context) (bool, error) {
	m.lifecycleMu.Lock()
	defer m.lifecycleMu.Unlock()

	m.mu.Lock()
	timeout := time.Duration(m.config.StopTimeout)

	if m.stopDone == nil {
		if !m.active {
			m.mu.Unlock()
			m.logger.Warn().Msg("Trigger manager not active")

			return false, nil
		}

		m.active = false
		unsubscribe, cancel := m.unsubscribe, m.runCancel
		m.unsubscribe, m.runCancel = nil, nil
		m.mu.Unlock()

		if unsubscribe != nil {
			unsubscribe()
		}

		if cancel != nil {
			cancel()
		}

		done := make(chan struct{})

		go func() {
			m.wg.Wait()
			close(done)
		}()

		m.stopDone = done
	} else {
		m.mu.Unlock()
		m.logger.Info().Msg("Retrying pending trigger manager stop")
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-m.stopDone:
	case <-timer.C:
		m.logger.Error().Dur("timeout", timeout).Msg("Scan did not finish in time")
		return false, ErrScanStopTimeout
	case <-ctx.Done():
		return false, ctx.Err()
	}

	m.stopDone = nil
	m.logger.Info().Msg("Trigger manager stopped")

	return true, nil
}

// stopPendingLocked reports whether an earlier Stop is still waiting on the
// worker, clearing the pending state once the worker has exited. Callers
// hold lifecycleMu.
func (m *Manager) stopPendingLocked() bool {
	if m.stopDone == nil {
		return false
	}

	select {
	case <-m.stopDone:
		m.stopDone = nil
		return false
	default:
		return true
	}
}

// IsActive reports whether events are being admitted.
func (m *Manager) IsActive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.active
}

// ManualScan injects a manual_trigger event through the poller so it goes
// through normal admission.
func (m *Manager) ManualScan(ctx context.Context, message string) (models.TriggerEvent, error) {
	if !m.IsActive() {
		return models.TriggerEvent{}, ErrNotActive
	}

	return m.source.TriggerManual(ctx, message), nil
}

// SetCallbacks replaces the UART callbacks used by later scans.
func (m *Manager) SetCallbacks(cb uart.Callbacks) {
	m.mu.Lock()
	m.callbacks = cb
	m.mu.Unlock()

	m.logger.Info().Interface("callbacks", cb.Configured()).Msg("UART callbacks set")
}

// UpdateConfig swaps the configuration and pushes the max scan interval to
// the poller.
func (m *Manager) UpdateConfig(cfg Config) error {
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	m.config = cfg
	m.adaptive.BaseInterval = time.Duration(cfg.MinScanInterval)
	m.adaptive.CurrentInterval = m.minIntervalLocked()
	m.mu.Unlock()

	m.source.SetMaxScanInterval(time.Duration(cfg.MaxScanInterval))

	m.logger.Info().
		Dur("min_scan_interval", time.Duration(cfg.MinScanInterval)).
		Dur("max_scan_interval", time.Duration(cfg.MaxScanInterval)).
		Bool("adaptive_scanning", cfg.AdaptiveScanning).
		Strs("priority_mac_ids", cfg.PriorityMACIDs).
		Msg("Scan configuration updated")

	return nil
}

// HandleTrigger implements poller.Subscriber. Admission runs on the
// delivering goroutine; an admitted scan runs on its own goroutine.
func (m *Manager) HandleTrigger(ctx context.Context, event models.TriggerEvent) error {
	decision := models.TriggerDecision{Event: event, DecidedAt: m.now()}

	m.mu.Lock()
	m.stats.TriggersReceived++
	m.mu.Unlock()

	runCtx, strategy, skip := m.admit(event, decision.DecidedAt)
	if skip != "" {
		decision.SkipReason = skip

		m.mu.Lock()
		m.stats.TriggersSkipped++
		m.mu.Unlock()

		m.logger.Debug().
			Str("event_id", event.ID).
			Str("reason", string(event.Reason)).
			Str("skip", skip).
			Msg("Trigger skipped")
		recordDecision(ctx, event.Reason, skip)
		m.publishDecision(ctx, decision)

		return nil
	}

	decision.Admitted = true
	decision.Strategy = &strategy

	m.mu.Lock()
	m.stats.TriggersProcessed++
	m.mu.Unlock()

	m.logger.Info().
		Str("event_id", event.ID).
		Str("reason", string(event.Reason)).
		Str("focus", string(strategy.Focus)).
		Dur("duration", strategy.Duration).
		Bool("priority", strategy.Priority).
		Msg("Trigger admitted, starting scan")
	recordDecision(ctx, event.Reason, "admitted")
	m.publishDecision(ctx, decision)

	go m.runScan(runCtx, event, strategy)

	return nil
}

// admit returns a non-empty skip reason, or claims the scan slot, registers
// the worker and returns the strategy to run.
func (m *Manager) admit(event models.TriggerEvent, now time.Time) (context.Context, models.ScanStrategy, string) {
	m.mu.RLock()

	if !m.active {
		m.mu.RUnlock()
		return nil, models.ScanStrategy{}, SkipInactive
	}

	if m.scanning.Load() {
		m.mu.RUnlock()
		return nil, models.ScanStrategy{}, SkipScanInProgress
	}

	if !m.lastScanTime.IsZero() && !event.Reason.BypassesRateLimit() {
		if now.Sub(m.lastScanTime) < m.minIntervalLocked() {
			m.mu.RUnlock()
			return nil, models.ScanStrategy{}, SkipRateLimited
		}
	}

	if m.skipNonPriorityLocked(event) {
		m.mu.RUnlock()
		return nil, models.ScanStrategy{}, SkipNonPriority
	}

	if !m.scanning.CompareAndSwap(false, true) {
		m.mu.RUnlock()
		return nil, models.ScanStrategy{}, SkipScanInProgress
	}

	// registered before Stop can flip active and start waiting
	m.wg.Add(1)

	strategy := m.strategyLocked(event)
	runCtx := m.runCtx
	m.mu.RUnlock()

	return runCtx, strategy, ""
}

func (m *Manager) skipNonPriorityLocked(event models.TriggerEvent) bool {
	if event.Reason != models.ReasonNewMACDetected ||
		len(m.config.PriorityMACIDs) == 0 ||
		len(event.MACIDs) == 0 ||
		m.adaptive.ActivityLevel != models.ActivityLow {
		return false
	}

	priority := m.config.prioritySet()
	for _, mac := range event.MACIDs {
		if _, ok := priority[mac]; ok {
			return false
		}
	}

	return true
}

// minIntervalLocked derives the admission interval from the activity level.
func (m *Manager) minIntervalLocked() time.Duration {
	base := time.Duration(m.config.MinScanInterval)
	if !m.config.AdaptiveScanning {
		return base
	}

	switch m.adaptive.ActivityLevel {
	case models.ActivityHigh:
		return max(base/2, highActivityFloor)
	case models.ActivityLow:
		return max(min(base*2, time.Duration(m.config.MaxScanInterval)/2), base)
	default:
		return base
	}
}

func (m *Manager) strategyLocked(event models.TriggerEvent) models.ScanStrategy {
	d := m.config.Durations

	switch event.Reason {
	case models.ReasonNewMACDetected:
		return models.ScanStrategy{
			Priority:   true,
			Duration:   time.Duration(d.NewDevice),
			Focus:      models.FocusNewDevice,
			TargetMACs: append([]string(nil), event.MACIDs...),
		}
	case models.ReasonDataChangeDetected:
		return models.ScanStrategy{Duration: time.Duration(d.DataSync), Focus: models.FocusDataSync}
	case models.ReasonRemoteReconnected:
		return models.ScanStrategy{Priority: true, Duration: time.Duration(d.FullSync), Focus: models.FocusFullSync}
	case models.ReasonScheduledScan:
		duration := d.Scheduled

		switch m.adaptive.ActivityLevel {
		case models.ActivityHigh:
			duration = d.ScheduledHigh
		case models.ActivityLow:
			duration = d.ScheduledLow
		}

		return models.ScanStrategy{Duration: time.Duration(duration), Focus: models.FocusGeneral}
	default:
		return models.ScanStrategy{Duration: time.Duration(d.Manual), Focus: models.FocusGeneral}
	}
}

func (m *Manager) publishDecision(ctx context.Context, decision models.TriggerDecision) {
	if m.publisher == nil {
		return
	}

	if err := m.publisher.PublishDecision(ctx, decision); err != nil {
		m.logger.Warn().Err(err).Str("event_id", decision.Event.ID).Msg("Failed to publish trigger decision")
	}
}
