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
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

// Status is a deep-copied snapshot for the reporting API.
type Status struct {
	Active         bool                  `json:"active"`
	ScanInProgress bool                  `json:"scan_in_progress"`
	LastScanTime   *time.Time            `json:"last_scan_time,omitempty"`
	AdaptiveState  models.AdaptiveState  `json:"adaptive_state"`
	Config         Config                `json:"scan_config"`
	Callbacks      map[string]bool       `json:"uart_callbacks"`
	Statistics     models.ScanStatistics `json:"statistics"`
}

func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := Status{
		Active:         m.active,
		ScanInProgress: m.scanning.Load(),
		AdaptiveState:  m.adaptive,
		Config:         m.config,
		Callbacks:      m.callbacks.Configured(),
		Statistics:     m.stats,
	}

	status.Config.PriorityMACIDs = append([]string(nil), m.config.PriorityMACIDs...)
	status.Statistics.History = append([]models.ScanResult{}, m.stats.History...)

	if m.stats.LastScanResult != nil {
		last := *m.stats.LastScanResult
		status.Statistics.LastScanResult = &last
	}

	if !m.lastScanTime.IsZero() {
		t := m.lastScanTime
		status.LastScanTime = &t
	}

	return status
}

// Config returns the active configuration.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cfg := m.config
	cfg.PriorityMACIDs = append([]string(nil), m.config.PriorityMACIDs...)

	return cfg
}
