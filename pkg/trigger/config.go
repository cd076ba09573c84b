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

const (
	defaultMinScanInterval = 30 * time.Second
	defaultMaxScanInterval = 300 * time.Second
	defaultScanTimeout     = 60 * time.Second
	defaultStopTimeout     = 30 * time.Second
	defaultHistorySize     = 50

	defaultNewDeviceScan     = 45 * time.Second
	defaultDataSyncScan      = 20 * time.Second
	defaultFullSyncScan      = 60 * time.Second
	defaultScheduledScan     = 30 * time.Second
	defaultScheduledHighScan = 45 * time.Second
	defaultScheduledLowScan  = 15 * time.Second
	defaultManualScan        = 30 * time.Second

	highActivityFloor = 10 * time.Second
)

// ScanDurations sets how long a scan holds the UART open, per trigger.
type ScanDurations struct {
	NewDevice     models.Duration `json:"new_device"`
	DataSync      models.Duration `json:"data_sync"`
	FullSync      models.Duration `json:"full_sync"`
	Scheduled     models.Duration `json:"scheduled"`
	ScheduledHigh models.Duration `json:"scheduled_high"`
	ScheduledLow  models.Duration `json:"scheduled_low"`
	Manual        models.Duration `json:"manual"`
}

// Config is replaced wholesale by UpdateConfig. AdaptiveScanning is only
// true by default when starting from DefaultConfig.
type Config struct {
	MinScanInterval  models.Duration `json:"min_scan_interval"`
	MaxScanInterval  models.Duration `json:"max_scan_interval"`
	AdaptiveScanning bool            `json:"adaptive_scanning"`
	PriorityMACIDs   []string        `json:"priority_mac_ids,omitempty"`
	// ScanTimeout is the grace a scan gets beyond its hold duration.
	ScanTimeout models.Duration `json:"scan_timeout"`
	StopTimeout models.Duration `json:"stop_timeout"`
	HistorySize int             `json:"history_size"`
	Durations   ScanDurations   `json:"durations"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	cfg := Config{AdaptiveScanning: true}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	setDefault(&c.MinScanInterval, defaultMinScanInterval)
	setDefault(&c.MaxScanInterval, defaultMaxScanInterval)
	setDefault(&c.ScanTimeout, defaultScanTimeout)
	setDefault(&c.StopTimeout, defaultStopTimeout)

	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}

	d := &c.Durations
	setDefault(&d.NewDevice, defaultNewDeviceScan)
	setDefault(&d.DataSync, defaultDataSyncScan)
	setDefault(&d.FullSync, defaultFullSyncScan)
	setDefault(&d.Scheduled, defaultScheduledScan)
	setDefault(&d.ScheduledHigh, defaultScheduledHighScan)
	setDefault(&d.ScheduledLow, defaultScheduledLowScan)
	setDefault(&d.Manual, defaultManualScan)
}

func setDefault(d *models.Duration, v time.Duration) {
	if *d == 0 {
		*d = models.Duration(v)
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	for _, d := range []models.Duration{
		c.MinScanInterval, c.MaxScanInterval, c.ScanTimeout, c.StopTimeout,
		c.Durations.NewDevice, c.Durations.DataSync, c.Durations.FullSync,
		c.Durations.Scheduled, c.Durations.ScheduledHigh, c.Durations.ScheduledLow,
		c.Durations.Manual,
	} {
		if d < 0 {
			return errInvalidDuration
		}
	}

	if c.MaxScanInterval < c.MinScanInterval {
		return errInvalidScanWindow
	}

	return nil
}

func (c *Config) prioritySet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.PriorityMACIDs))
	for _, mac := range c.PriorityMACIDs {
		set[mac] = struct{}{}
	}

	return set
}
