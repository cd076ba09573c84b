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

package poller

import (
	"sort"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

// Stats are reset on every Start.
type Stats struct {
	TotalChecks      int64      `json:"total_checks"`
	SuccessfulChecks int64      `json:"successful_checks"`
	ConnectionErrors int64      `json:"connection_errors"`
	TriggersSent     int64      `json:"triggers_sent"`
	TriggersDropped  int64      `json:"triggers_dropped"`
	MACsDiscovered   []string   `json:"mac_ids_discovered"`
	LastTriggerTime  *time.Time `json:"last_trigger_time,omitempty"`
}

// Status is a read-only snapshot for the reporting API.
type Status struct {
	Running             bool                             `json:"running"`
	UptimeSeconds       float64                          `json:"uptime_seconds"`
	RemoteConnected     bool                             `json:"raspi_connected"`
	LastSuccessfulCheck *time.Time                       `json:"last_successful_check,omitempty"`
	Stats               Stats                            `json:"stats"`
	KnownMACs           []string                         `json:"known_mac_ids"`
	LastDataSummary     map[string]models.ChannelSummary `json:"last_data_summary,omitempty"`
	PendingEvents       int                              `json:"pending_events"`
	Config              Config                           `json:"config"`
}

// Status returns a consistent snapshot of the poller.
func (p *Poller) Status() Status {
	connected := p.gateway.IsConnected()
	now := p.clock.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	status := Status{
		Running:         p.running,
		RemoteConnected: connected,
		Stats: Stats{
			TotalChecks:      p.stats.totalChecks,
			SuccessfulChecks: p.stats.successfulChecks,
			ConnectionErrors: p.stats.connectionErrors,
			TriggersSent:     p.stats.triggersSent,
			TriggersDropped:  p.stats.triggersDropped,
			MACsDiscovered:   sortedKeys(p.stats.macsDiscovered),
		},
		KnownMACs:       sortedKeys(p.knownMACs),
		LastDataSummary: copySummary(p.lastSummary),
		PendingEvents:   len(p.events),
		Config:          p.config,
	}

	if p.running && !p.startedAt.IsZero() {
		status.UptimeSeconds = now.Sub(p.startedAt).Seconds()
	}

	if !p.lastSuccessfulCheck.IsZero() {
		t := p.lastSuccessfulCheck
		status.LastSuccessfulCheck = &t
	}

	if !p.stats.lastTriggerTime.IsZero() {
		t := p.stats.lastTriggerTime
		status.Stats.LastTriggerTime = &t
	}

	return status
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
