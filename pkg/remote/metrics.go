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
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName         = "sensorpoll.remote"
	metricCallsTotal  = "sensorpoll_remote_calls_total"
	metricCallLatency = "sensorpoll_remote_call_latency_seconds"

	outcomeSuccess   = "success"
	outcomeFailure   = "failure"
	outcomeMalformed = "malformed"
	outcomeCacheHit  = "cache_hit"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	callCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	callLatency metric.Float64Histogram
)

func initMeter() {
	meter := otel.Meter(meterName)

	counter, err := meter.Int64Counter(
		metricCallsTotal,
		metric.WithDescription("Gateway calls by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}
	callCounter = counter

	hist, err := meter.Float64Histogram(
		metricCallLatency,
		metric.WithDescription("Latency of gateway calls including retries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}
	callLatency = hist
}

func recordCall(ctx context.Context, method, outcome string, elapsed time.Duration) {
	meterOnce.Do(initMeter)

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	)

	if callCounter != nil {
		callCounter.Add(ctx, 1, attrs)
	}

	if callLatency != nil && outcome != outcomeCacheHit {
		callLatency.Record(ctx, elapsed.Seconds(), attrs)
	}
}
