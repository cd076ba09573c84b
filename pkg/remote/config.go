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

package remote

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

var (
	errHostRequired      = errors.New("remote host is required")
	errInvalidPort       = errors.New("remote port must be between 1 and 65535")
	errInvalidRetryCount = errors.New("retry_count must be at least 1")
	errInvalidTimeout    = errors.New("timeout must be positive")
)

const (
	defaultHost          = "192.168.113.239"
	defaultPort          = 5000
	defaultTimeout       = 10 * time.Second
	defaultRetryCount    = 3
	defaultRetryDelay    = time.Second
	defaultPollInterval  = 5 * time.Second
	defaultCacheCapacity = 256
	defaultScheme        = "http"
)

// Config describes how to reach the remote gateway. It is replaced wholesale
// through Client.UpdateConfig.
type Config struct {
	Host          string          `json:"host"`
	Port          int             `json:"port"`
	Scheme        string          `json:"scheme,omitempty"`
	Timeout       models.Duration `json:"timeout"`
	RetryCount    int             `json:"retry_count"`
	RetryDelay    models.Duration `json:"retry_delay"`
	PollInterval  models.Duration `json:"poll_interval"`
	CacheCapacity int             `json:"cache_capacity"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = defaultHost
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Scheme == "" {
		c.Scheme = defaultScheme
	}

	if c.Timeout == 0 {
		c.Timeout = models.Duration(defaultTimeout)
	}

	if c.RetryCount == 0 {
		c.RetryCount = defaultRetryCount
	}

	if c.RetryDelay == 0 {
		c.RetryDelay = models.Duration(defaultRetryDelay)
	}

	if c.PollInterval == 0 {
		c.PollInterval = models.Duration(defaultPollInterval)
	}

	if c.CacheCapacity == 0 {
		c.CacheCapacity = defaultCacheCapacity
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errHostRequired
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", errInvalidPort, c.Port)
	}

	if c.RetryCount < 1 {
		return errInvalidRetryCount
	}

	if c.Timeout <= 0 {
		return errInvalidTimeout
	}

	return nil
}

// BaseURL is scheme://host:port.
func (c *Config) BaseURL() string {
	return c.Scheme + "://" + net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
