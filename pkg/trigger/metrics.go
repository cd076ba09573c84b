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
	"context"
	"sync"

	"github.com/carverauto/sensorpoll/pkg/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName            = "sensorpoll.trigger"
	metricDecisionsTotal = "sensorpoll_trigger_decisions_total"
	metricScansTotal     = "sensorpoll_trigger_scans_total"
	metricScanDuration   = "sensorpoll_trigger_scan_duration_seconds"
	metricScanData       = "sensorpoll_trigger_scan_data_points"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	decisionCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	scanCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	scanDuration metric.Float64Histogram
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	scanData metric.Int64Histogram
)

func initMeter() {
	meter := otel.Meter(meterName)

	var err error

	if decisionCounter, err = meter.Int64Counter(
		metricDecisionsTotal,
		metric.WithDescription("Trigger admission decisions by reason and result"),
	); err != nil {
		otel.Handle(err)
	}

	if scanCounter, err = meter.Int64Counter(
		metricScansTotal,
		metric.WithDescription("Completed scans by reason and outcome"),
	); err != nil {
		otel.Handle(err)
	}

	if scanDuration, err = meter.Float64Histogram(
		metricScanDuration,
		metric.WithDescription("Wall time of scan workers"),
		metric.WithUnit("s"),
	); err != nil {
		otel.Handle(err)
	}

	if scanData, err = meter.Int64Histogram(
		metricScanData,
		metric.WithDescription("UART data points present after a scan"),
	); err != nil {
		otel.Handle(err)
	}
}

func recordDecision(ctx context.Context, reason models.TriggerReason, result string) {
	meterOnce.Do(initMeter)

	if decisionCounter != nil {
		decisionCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("reason", string(reason)),
			attribute.String("result", result),
		))
	}
}

func recordScan(ctx context.Context, result models.ScanResult) {
	meterOnce.Do(initMeter)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
	}

	attrs := metric.WithAttributes(
		attribute.String("reason", string(result.Reason)),
		attribute.String("outcome", outcome),
	)

	if scanCounter != nil {
		scanCounter.Add(ctx, 1, attrs)
	}

	if scanDuration != nil {
		scanDuration.Record(ctx, result.Duration.Seconds(), attrs)
	}

	if scanData != nil {
		scanData.Record(ctx, int64(result.DataCollected), attrs)
	}
}
