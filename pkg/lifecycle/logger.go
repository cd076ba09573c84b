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

// Package lifecycle wires process-level logging and shutdown handling.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
)

// CreateLogger creates a new logger instance with the provided configuration.
// This returns a logger that can be injected into services.
func CreateLogger(ctx context.Context, config *logger.Config) (*logger.ZerologLogger, error) {
	l, err := logger.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return l, nil
}

// CreateComponentLogger creates a logger for a specific component.
func CreateComponentLogger(ctx context.Context, component string, config *logger.Config) (logger.Logger, error) {
	l, err := CreateLogger(ctx, config)
	if err != nil {
		return nil, err
	}

	return l.Named(component), nil
}

// InitializeMetrics starts the OTLP metrics pipeline when configured. A
// disabled exporter is not an error; instruments fall back to the noop provider.
func InitializeMetrics(ctx context.Context, serviceName string, otelConfig *logger.OTelConfig, interval time.Duration, log logger.Logger) error {
	_, err := logger.InitializeMetrics(ctx, logger.MetricsConfig{
		ServiceName:    serviceName,
		OTel:           otelConfig,
		ExportInterval: interval,
	})

	switch {
	case errors.Is(err, logger.ErrOTelMetricsDisabled):
		log.Debug().Msg("OTel metrics export disabled")
		return nil
	case err != nil:
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	log.Info().Str("endpoint", otelConfig.Endpoint).Msg("OTel metrics export enabled")

	return nil
}
