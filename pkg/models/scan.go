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

// ActivityLevel classifies recent gateway activity for adaptive scanning.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityNormal ActivityLevel = "normal"
	ActivityHigh   ActivityLevel = "high"
)

// StepDown returns the next quieter level. Low stays low.
func (l ActivityLevel) StepDown() ActivityLevel {
	switch l {
	case ActivityHigh:
		return ActivityNormal
	default:
		return ActivityLow
	}
}

// AdaptiveState is owned by the trigger manager and read through snapshots.
type AdaptiveState struct {
	BaseInterval          time.Duration `json:"base_interval"`
	CurrentInterval       time.Duration `json:"current_interval"`
	ActivityLevel         ActivityLevel `json:"activity_level"`
	ConsecutiveEmptyScans int           `json:"consecutive_empty_scans"`
	RecentActivity        bool          `json:"recent_activity"`
}

// ScanFocus describes what a scan concentrates on.
type ScanFocus string

const (
	FocusGeneral   ScanFocus = "general"
	FocusNewDevice ScanFocus = "new_device_focus"
	FocusDataSync  ScanFocus = "data_sync"
	FocusFullSync  ScanFocus = "full_sync"
)

// ScanStrategy is chosen per admitted trigger event.
type ScanStrategy struct {
	Priority   bool          `json:"priority"`
	Duration   time.Duration `json:"duration"`
	Focus      ScanFocus     `json:"focus"`
	TargetMACs []string      `json:"target_macs,omitempty"`
}

// ScanResult records the outcome of a single scan worker run.
type ScanResult struct {
	EventID       string        `json:"event_id"`
	Reason        TriggerReason `json:"reason"`
	Strategy      ScanStrategy  `json:"strategy"`
	Success       bool          `json:"success"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Duration      time.Duration `json:"duration"`
	DataCollected int           `json:"data_collected"`
	Error         string        `json:"error,omitempty"`
}

// ScanStatistics is cumulative over the trigger manager's lifetime.
type ScanStatistics struct {
	TotalScans          int64         `json:"total_scans"`
	SuccessfulScans     int64         `json:"successful_scans"`
	FailedScans         int64         `json:"failed_scans"`
	TriggersReceived    int64         `json:"triggers_received"`
	TriggersProcessed   int64         `json:"triggers_processed"`
	TriggersSkipped     int64         `json:"triggers_skipped"`
	AverageScanDuration time.Duration `json:"average_scan_duration"`
	LastScanResult      *ScanResult   `json:"last_scan_result,omitempty"`
	History             []ScanResult  `json:"history"`
}

// TriggerDecision records how the trigger manager handled one event.
type TriggerDecision struct {
	Event      TriggerEvent  `json:"event"`
	Admitted   bool          `json:"admitted"`
	SkipReason string        `json:"skip_reason,omitempty"`
	Strategy   *ScanStrategy `json:"strategy,omitempty"`
	DecidedAt  time.Time     `json:"decided_at"`
}
