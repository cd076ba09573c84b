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

// Package uart describes the UART control surface driven by scans.
package uart

import (
	"context"

	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/remote"
)

const statusRunning = "running"

// Status is what a status callback reports about the UART reader.
type Status struct {
	IsRunning bool                   `json:"is_running"`
	DataCount int                    `json:"data_count"`
	Raw       map[string]interface{} `json:"raw,omitempty"`
}

// Callbacks control the UART reader. Any of them may be nil.
type Callbacks struct {
	Start  func(ctx context.Context) bool
	Stop   func(ctx context.Context) bool
	Status func(ctx context.Context) Status
}

// Configured reports which callbacks are set, for status output.
func (c Callbacks) Configured() map[string]bool {
	return map[string]bool{
		"start":  c.Start != nil,
		"stop":   c.Stop != nil,
		"status": c.Status != nil,
	}
}

// Controller is the part of the remote client that drives a UART over HTTP.
type Controller interface {
	StartUART(ctx context.Context) remote.Result
	StopUART(ctx context.Context) remote.Result
	UARTStatus(ctx context.Context) remote.Result
}

// NewRemoteCallbacks drives the gateway's own UART reader.
func NewRemoteCallbacks(c Controller, log logger.Logger) Callbacks {
	command := func(name string, call func(context.Context) remote.Result) func(context.Context) bool {
		return func(ctx context.Context) bool {
			res := call(ctx)
			if !res.Succeeded() {
				log.Warn().
					Str("command", name).
					Str("error", res.ErrorMessage()).
					Str("message", res.String("message")).
					Msg("UART command failed")

				return false
			}

			return true
		}
	}

	return Callbacks{
		Start: command("start", c.StartUART),
		Stop:  command("stop", c.StopUART),
		Status: func(ctx context.Context) Status {
			return ParseStatus(c.UARTStatus(ctx))
		},
	}
}

// ParseStatus reads a gateway UART status payload. A failed call reads as
// not running with no data.
func ParseStatus(res remote.Result) Status {
	if !res.OK() {
		return Status{}
	}

	status := Status{Raw: res.Data}

	if running, ok := res.Data["is_running"].(bool); ok {
		status.IsRunning = running
	} else {
		status.IsRunning = res.Succeeded() && res.String("status") == statusRunning
	}

	for _, key := range []string{"data_count", "latest_data_count", "total_count"} {
		if _, ok := res.Data[key]; ok {
			status.DataCount = res.Int(key)
			break
		}
	}

	return status
}
