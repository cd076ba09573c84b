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

// Package aggregator folds several gateway calls into one snapshot,
// tolerating partial failure.
package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
)

const (
	uartStatusRunning = "running"

	defaultMaxMACFanout      = 5
	defaultRecentDataMinutes = 1
)

// Config bounds how much work one summary may cause on the gateway.
type Config struct {
	MaxMACFanout      int `json:"max_mac_fanout"`
	RecentDataMinutes int `json:"recent_data_minutes"`
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.MaxMACFanout <= 0 {
		c.MaxMACFanout = defaultMaxMACFanout
	}

	if c.RecentDataMinutes <= 0 {
		c.RecentDataMinutes = defaultRecentDataMinutes
	}
}

// Aggregator builds summaries of gateway data by fanning out per-MAC
// requests through the remote client. It is safe for concurrent use.
type Aggregator struct {
	api    RemoteAPI
	logger logger.Logger

	mu     sync.RWMutex
	config Config
}

// New returns an Aggregator backed by api. Zero config fields take defaults.
func New(api RemoteAPI, cfg Config, log logger.Logger) *Aggregator {
	cfg.ApplyDefaults()

	return &Aggregator{
		api:    api,
		config: cfg,
		logger: log,
	}
}

// Config returns the active configuration.
func (a *Aggregator) Config() Config {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.config
}

// UpdateConfig replaces the fan-out settings for subsequent summaries.
func (a *Aggregator) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()
}

// UARTSummary reports UART activity. When the gateway's UART is not running
// no further calls are made. Per-MAC failures contribute nothing rather than
// failing the summary.
func (a *Aggregator) UARTSummary(ctx context.Context) models.UARTSummary {
	cfg := a.Config()

	summary := models.UARTSummary{
		Timestamp: time.Now(),
	}

	status := a.api.UARTStatus(ctx)
	if !status.OK() {
		summary.Error = status.ErrorMessage()
		return summary
	}

	summary.UARTActive = status.Succeeded() && status.String("status") == uartStatusRunning
	if !summary.UARTActive {
		summary.Success = true
		return summary
	}

	macIDs, err := a.api.MACIDs(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("MAC ID listing unavailable")
	}

	summary.MACIDs = macIDs
	summary.TotalMACs = len(macIDs)
	summary.ChannelsSummary = make(map[string]models.ChannelSummary)

	fanout := macIDs
	if len(fanout) > cfg.MaxMACFanout {
		fanout = fanout[:cfg.MaxMACFanout]
	}

	for _, mac := range fanout {
		channelsOK := false
		entry := models.ChannelSummary{}

		channels := a.api.MACChannels(ctx, mac)
		if channels.Succeeded() {
			channelsOK = true

			if data := channels.Map("data"); data != nil {
				list, _ := data["channels"].([]interface{})
				entry.ChannelCount = len(list)
			}
		}

		recent, err := a.api.MACData(ctx, mac, cfg.RecentDataMinutes)
		if err != nil {
			a.logger.Debug().Err(err).Str("mac_id", mac).Msg("Recent data unavailable")
		} else {
			entry.RecentDataPoints = len(recent)
			summary.RecentDataPoints += len(recent)
		}

		if channelsOK {
			summary.ChannelsSummary[mac] = entry
		}
	}

	summary.Success = true

	return summary
}

// CompleteStatus gathers every status endpoint. Sections that fail are left
// empty; Success mirrors the client's connectivity afterwards.
func (a *Aggregator) CompleteStatus(ctx context.Context) models.CompleteStatus {
	status := models.CompleteStatus{
		Timestamp: time.Now(),
	}

	if res := a.api.SystemStatus(ctx); res.OK() {
		status.System = res.Data
	}

	if res := a.api.UARTStatus(ctx); res.OK() {
		status.UART = res.Data
	}

	if res := a.api.DashboardStats(ctx); res.OK() {
		status.Dashboard = res.Data
	}

	if res := a.api.DatabaseStatistics(ctx); res.OK() {
		status.Database = res.Data
	}

	status.Connection = a.api.ConnectionStatus()
	status.Success = status.Connection.Connected

	return status
}
