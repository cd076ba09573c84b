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

// Package models holds the value types shared by the sensorpoll pipeline.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var errInvalidDuration = errors.New("invalid duration")

// Duration accepts either a Go duration string ("30s") or nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// NATSConfig configures NATS connectivity for the event sink.
type NATSConfig struct {
	Enabled    bool   `json:"enabled"`
	URL        string `json:"url"`
	Domain     string `json:"domain,omitempty"`
	StreamName string `json:"stream_name"`
	CredsFile  string `json:"creds_file,omitempty"`
	// TLS enables mTLS to the NATS server when set.
	TLS *NATSTLSConfig `json:"tls,omitempty"`
}

// NATSTLSConfig holds client certificate paths for NATS mTLS.
type NATSTLSConfig struct {
	CertFile   string `json:"cert_file"`
	KeyFile    string `json:"key_file"`
	CAFile     string `json:"ca_file"`
	ServerName string `json:"server_name,omitempty"`
}

var (
	errNATSURLRequired = errors.New("nats url is required")
	errNATSTLSFiles    = errors.New("nats tls requires cert_file, key_file and ca_file")
)

// Validate ensures the NATS configuration is valid
func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.URL == "" {
		return errNATSURLRequired
	}

	if c.TLS != nil && (c.TLS.CertFile == "" || c.TLS.KeyFile == "" || c.TLS.CAFile == "") {
		return errNATSTLSFiles
	}

	if c.StreamName == "" {
		c.StreamName = "events"
	}

	return nil
}
