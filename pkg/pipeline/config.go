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

package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/sensorpoll/pkg/aggregator"
	"github.com/carverauto/sensorpoll/pkg/api"
	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/models"
	"github.com/carverauto/sensorpoll/pkg/poller"
	"github.com/carverauto/sensorpoll/pkg/remote"
	"github.com/carverauto/sensorpoll/pkg/trigger"
)

const (
	defaultServiceName       = "sensorpoll"
	defaultShutdownTimeout   = 45 * time.Second
	defaultMetricsInterval   = 30 * time.Second
	defaultStartRetryMax     = 2 * time.Minute
	defaultStartRetryInitial = 2 * time.Second
)

var errMetricsEndpoint = errors.New("metrics otel endpoint is required when enabled")

// MetricsConfig controls OTLP metric export.
type MetricsConfig struct {
	OTel           logger.OTelConfig `json:"otel"`
	ExportInterval models.Duration   `json:"export_interval"`
}

// Config is the on-disk configuration of the whole process.
type Config struct {
	ServiceName     string             `json:"service_name"`
	Remote          remote.Config      `json:"remote"`
	Aggregator      aggregator.Config  `json:"aggregator"`
	Poller          poller.Config      `json:"poller"`
	Trigger         trigger.Config     `json:"trigger"`
	API             api.Config         `json:"api"`
	NATS            *models.NATSConfig `json:"nats,omitempty"`
	Logging         *logger.Config     `json:"logging,omitempty"`
	Metrics         MetricsConfig      `json:"metrics"`
	ShutdownTimeout models.Duration    `json:"shutdown_timeout"`

	// StartRetryMax caps the backoff between attempts to start polling
	// while the gateway is unreachable.
	StartRetryMax models.Duration `json:"start_retry_max"`
}

// DefaultConfig returns a config suitable for decoding a file over, so that
// omitted sections keep their defaults.
func DefaultConfig() Config {
	cfg := Config{
		Remote:  remote.DefaultConfig(),
		Poller:  poller.DefaultConfig(),
		Trigger: trigger.DefaultConfig(),
		API:     api.Config{Enabled: true},
	}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults implements config.Defaulter.
func (c *Config) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = defaultServiceName
	}

	c.Remote.ApplyDefaults()
	c.Aggregator.ApplyDefaults()
	c.Poller.ApplyDefaults()
	c.Trigger.ApplyDefaults()
	c.API.ApplyDefaults()

	if c.Metrics.ExportInterval == 0 {
		c.Metrics.ExportInterval = models.Duration(defaultMetricsInterval)
	}

	if c.Metrics.OTel.ServiceName == "" {
		c.Metrics.OTel.ServiceName = c.ServiceName
	}

	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = models.Duration(defaultShutdownTimeout)
	}

	if c.StartRetryMax == 0 {
		c.StartRetryMax = models.Duration(defaultStartRetryMax)
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if err := c.Remote.Validate(); err != nil {
		return fmt.Errorf("remote: %w", err)
	}

	if err := c.Poller.Validate(); err != nil {
		return fmt.Errorf("poller: %w", err)
	}

	if err := c.Trigger.Validate(); err != nil {
		return fmt.Errorf("trigger: %w", err)
	}

	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if c.NATS != nil {
		if err := c.NATS.Validate(); err != nil {
			return fmt.Errorf("nats: %w", err)
		}
	}

	if c.Metrics.OTel.Enabled && c.Metrics.OTel.Endpoint == "" {
		return errMetricsEndpoint
	}

	return nil
}
