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
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

const (
	defaultPollInterval        = 5 * time.Second
	defaultMaxScanInterval     = 300 * time.Second
	defaultDataChangeThreshold = 10
	defaultEventQueueSize      = 100
	defaultStopTimeout         = 10 * time.Second

	minPollInterval    = time.Second
	minMaxScanInterval = 60 * time.Second
)

// Config tunes the poll loop. Every field except EventQueueSize can be
// changed at runtime through UpdateConfig.
type Config struct {
	PollInterval        models.Duration `json:"poll_interval"`
	MaxScanInterval     models.Duration `json:"max_scan_interval"`
	DataChangeThreshold int             `json:"data_change_threshold"`
	EventQueueSize      int             `json:"event_queue_size"`
	StopTimeout         models.Duration `json:"stop_timeout"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.PollInterval == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	if c.MaxScanInterval == 0 {
		c.MaxScanInterval = models.Duration(defaultMaxScanInterval)
	}

	if c.DataChangeThreshold == 0 {
		c.DataChangeThreshold = defaultDataChangeThreshold
	}

	if c.EventQueueSize == 0 {
		c.EventQueueSize = defaultEventQueueSize
	}

	if c.StopTimeout == 0 {
		c.StopTimeout = models.Duration(defaultStopTimeout)
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.PollInterval < 0 || c.MaxScanInterval < 0 || c.StopTimeout < 0 {
		return errInvalidInterval
	}

	if c.EventQueueSize < 0 {
		return errInvalidQueue
	}

	return nil
}

// clamp raises intervals to their floors.
func (c *Config) clamp() {
	if time.Duration(c.PollInterval) < minPollInterval {
		c.PollInterval = models.Duration(minPollInterval)
	}

	if time.Duration(c.MaxScanInterval) < minMaxScanInterval {
		c.MaxScanInterval = models.Duration(minMaxScanInterval)
	}

	if c.DataChangeThreshold < 0 {
		c.DataChangeThreshold = 0
	}
}
