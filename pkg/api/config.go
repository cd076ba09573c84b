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

package api

import (
	"errors"
	"time"

	"github.com/carverauto/sensorpoll/pkg/models"
)

const (
	defaultListenAddr   = ":8090"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

var errListenAddrRequired = errors.New("api listen_addr is required when enabled")

// Config controls the reporting HTTP server.
type Config struct {
	Enabled    bool              `json:"enabled"`
	ListenAddr string            `json:"listen_addr"`
	CORS       models.CORSConfig `json:"cors"`
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	if c.Enabled && c.ListenAddr == "" {
		return errListenAddrRequired
	}

	return nil
}
