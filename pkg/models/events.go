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

package models

import "time"

// CloudEvent represents a CloudEvents v1.0 compliant event.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// TriggerReason names why the poller thinks a scan may be warranted.
type TriggerReason string

const (
	ReasonNewMACDetected     TriggerReason = "new_mac_detected"
	ReasonDataChangeDetected TriggerReason = "data_change_detected"
	ReasonScheduledScan      TriggerReason = "scheduled_scan"
	ReasonManualTrigger      TriggerReason = "manual_trigger"
	ReasonRemoteReconnected  TriggerReason = "raspi_reconnected"
)

// BypassesRateLimit reports whether events with this reason ignore the
// minimum scan interval.
func (r TriggerReason) BypassesRateLimit() bool {
	return r == ReasonNewMACDetected || r == ReasonRemoteReconnected
}

// IsActivitySignal reports whether an admitted scan for this reason marks
// the gateway as busy.
func (r TriggerReason) IsActivitySignal() bool {
	return r == ReasonNewMACDetected || r == ReasonDataChangeDetected
}

// TriggerEvent is emitted by the poller and consumed once by the trigger manager.
type TriggerEvent struct {
	ID          string                    `json:"id"`
	Reason      TriggerReason             `json:"reason"`
	Timestamp   time.Time                 `json:"timestamp"`
	MACIDs      []string                  `json:"mac_ids,omitempty"`
	DataSummary map[string]ChannelSummary `json:"data_summary,omitempty"`
	Message     string                    `json:"message"`
}
