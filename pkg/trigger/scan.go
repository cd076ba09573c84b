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

package trigger

import (
	"context"
	"fmt"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/uart"
)

const (
	emptyStreakCooling = 3
	emptyStreakLow     = 5
)

// runScan is the worker goroutine. The scan slot is released only after
// completion bookkeeping so admission always measures from a finished scan.
func (m *Manager) runScan(runCtx context.Context, event models.TriggerEvent, strategy models.ScanStrategy) {
	defer m.wg.Done()
	defer m.scanning.Store(false)

	m.mu.RLock()
	callbacks := m.callbacks
	grace := time.Duration(m.config.ScanTimeout)
	m.mu.RUnlock()

	ctx, cancel := context.WithTimeout(runCtx, strategy.Duration+grace)
	defer cancel()

	result := models.ScanResult{
		EventID:   event.ID,
		Reason:    event.Reason,
		Strategy:  strategy,
		StartTime: m.now(),
	}

	collected, err := m.execute(ctx, callbacks, strategy)

	result.EndTime = m.now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.DataCollected = collected
	result.Success = err == nil

	if err != nil {
		result.Error = err.Error()
		m.logger.Error().Err(err).Str("event_id", event.ID).Msg("UART scan failed")
	} else {
		m.logger.Info().
			Str("event_id", event.ID).
			Dur("duration", result.Duration).
			Int("data_collected", collected).
			Msg("UART scan completed")
	}

	m.complete(event, result)

	recordScan(runCtx, result)

	if m.publisher != nil {
		if err := m.publisher.PublishScan(runCtx, result); err != nil {
			m.logger.Warn().Err(err).Str("event_id", event.ID).Msg("Failed to publish scan result")
		}
	}
}

// execute makes sure the UART is reading, holds for the strategy duration
// and reports how much data the reader holds afterwards.
func (m *Manager) execute(ctx context.Context, cb uart.Callbacks, strategy models.ScanStrategy) (int, error) {
	if cb.Status != nil {
		if status := cb.Status(ctx); !status.IsRunning {
			if cb.Start == nil {
				return 0, ErrNoStartCallback
			}

			if !cb.Start(ctx) {
				return 0, ErrUARTStartFailed
			}

			m.logger.Info().Msg("UART started for scan")
		}
	}

	timer := time.NewTimer(strategy.Duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", ErrScanInterrupted, ctx.Err())
	}

	if cb.Status == nil {
		return 0, nil
	}

	return cb.Status(ctx).DataCount, nil
}

// complete is the only writer of statistics and adaptive state.
func (m *Manager) complete(event models.TriggerEvent, result models.ScanResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &m.stats
	s.TotalScans++

	if result.Success {
		s.SuccessfulScans++
	} else {
		s.FailedScans++
	}

	s.AverageScanDuration = time.Duration(
		(int64(s.AverageScanDuration)*(s.TotalScans-1) + int64(result.Duration)) / s.TotalScans)

	last := result
	s.LastScanResult = &last

	s.History = append(s.History, result)
	if over := len(s.History) - m.config.HistorySize; over > 0 {
		s.History = append([]models.ScanResult(nil), s.History[over:]...)
	}

	if m.config.AdaptiveScanning {
		m.adaptLocked(event, result)
	}

	m.lastScanTime = result.EndTime
}

func (m *Manager) adaptLocked(event models.TriggerEvent, result models.ScanResult) {
	a := &m.adaptive

	if result.DataCollected > 0 {
		a.ConsecutiveEmptyScans = 0
		a.RecentActivity = true
	} else {
		a.ConsecutiveEmptyScans++

		if a.ConsecutiveEmptyScans >= emptyStreakCooling {
			a.RecentActivity = false
		}
	}

	switch {
	case event.Reason.IsActivitySignal():
		a.ActivityLevel = models.ActivityHigh
	case a.ConsecutiveEmptyScans >= emptyStreakLow:
		a.ActivityLevel = models.ActivityLow
	case a.ConsecutiveEmptyScans >= emptyStreakCooling:
		a.ActivityLevel = a.ActivityLevel.StepDown()
	default:
		a.ActivityLevel = models.ActivityNormal
	}

	a.CurrentInterval = m.minIntervalLocked()

	m.logger.Debug().
		Str("activity_level", string(a.ActivityLevel)).
		Int("consecutive_empty_scans", a.ConsecutiveEmptyScans).
		Dur("current_interval", a.CurrentInterval).
		Msg("Adaptive state updated")
}
