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

// Config returns the active configuration.
func (p *Poller) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.config
}

// UpdateConfig applies cfg, raising intervals to their floors. A changed
// poll interval takes effect on the running loop without a restart. The
// event queue keeps the size it was created with.
func (p *Poller) UpdateConfig(cfg Config) {
	cfg.ApplyDefaults()
	cfg.clamp()

	p.mu.Lock()
	cfg.EventQueueSize = p.config.EventQueueSize
	oldInterval := p.config.PollInterval
	p.config = cfg
	running := p.running
	p.mu.Unlock()

	p.logger.Info().
		Dur("poll_interval", time.Duration(cfg.PollInterval)).
		Dur("max_scan_interval", time.Duration(cfg.MaxScanInterval)).
		Int("data_change_threshold", cfg.DataChangeThreshold).
		Msg("Poller configuration updated")

	if running && oldInterval != cfg.PollInterval {
		p.reload(time.Duration(cfg.PollInterval))
	}
}

// SetMaxScanInterval updates only the scheduled-scan interval.
func (p *Poller) SetMaxScanInterval(d time.Duration) {
	if d < minMaxScanInterval {
		d = minMaxScanInterval
	}

	p.mu.Lock()
	p.config.MaxScanInterval = models.Duration(d)
	p.mu.Unlock()
}

// reload replaces any queued interval with d.
func (p *Poller) reload(d time.Duration) {
	select {
	case <-p.reloadCh:
	default:
	}

	select {
	case p.reloadCh <- d:
	default:
	}
}
