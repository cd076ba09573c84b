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

// ChannelSummary is the per-MAC slice of a UART summary.
type ChannelSummary struct {
	ChannelCount     int `json:"channel_count"`
	RecentDataPoints int `json:"recent_data_points"`
}

// UARTSummary is a point-in-time view of the gateway's UART activity.
type UARTSummary struct {
	Success          bool                      `json:"success"`
	UARTActive       bool                      `json:"uart_active"`
	MACIDs           []string                  `json:"mac_ids,omitempty"`
	TotalMACs        int                       `json:"total_macs"`
	RecentDataPoints int                       `json:"recent_data_points"`
	ChannelsSummary  map[string]ChannelSummary `json:"channels_summary,omitempty"`
	Error            string                    `json:"error,omitempty"`
	Timestamp        time.Time                 `json:"timestamp"`
}

// ConnectionStatus is a snapshot of the remote client's connectivity.
type ConnectionStatus struct {
	Connected        bool          `json:"connected"`
	LastCheck        time.Time     `json:"last_check,omitempty"`
	ConnectionErrors int           `json:"connection_errors"`
	Host             string        `json:"host"`
	Port             int           `json:"port"`
	BaseURL          string        `json:"base_url"`
	Timeout          time.Duration `json:"timeout"`
	CachedEntries    int           `json:"cached_entries"`
}

// CompleteStatus combines every gateway status endpoint. Sections that
// could not be fetched are left nil.
type CompleteStatus struct {
	Success    bool                   `json:"success"`
	Connection ConnectionStatus       `json:"connection"`
	System     map[string]interface{} `json:"system_status,omitempty"`
	UART       map[string]interface{} `json:"uart_status,omitempty"`
	Dashboard  map[string]interface{} `json:"dashboard_stats,omitempty"`
	Database   map[string]interface{} `json:"database_stats,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}
