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
	"context"
	"sync"

	"github.com/carverauto/sensorpoll/pkg/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName             = "sensorpoll.poller"
	metricChecksTotal     = "sensorpoll_poller_checks_total"
	metricTriggersTotal   = "sensorpoll_poller_triggers_total"
	metricTriggersDropped = "sensorpoll_poller_triggers_dropped_total"

	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	meterOnce sync.Once
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	checkCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	triggerCounter metric.Int64Counter
	//nolint:gochecknoglobals // metrics instruments are shared across the process intentionally
	droppedCounter metric.Int64Counter
)

func initMeter() {
	meter := otel.Meter(meterName)

	var err error

	checkCounter, err = meter.Int64Counter(
		metricChecksTotal,
		metric.WithDescription("Poll iterations by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	triggerCounter, err = meter.Int64Counter(
		metricTriggersTotal,
		metric.WithDescription("Trigger events emitted by reason"),
	)
	if err != nil {
		otel.Handle(err)
	}

	droppedCounter, err = meter.Int64Counter(
		metricTriggersDropped,
		metric.WithDescription("Trigger events dropped because the queue was full"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

func recordCheck(ctx context.Context, outcome string) {
	meterOnce.Do(initMeter)

	if checkCounter != nil {
		checkCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

func recordTrigger(ctx context.Context, reason models.TriggerReason) {
	meterOnce.Do(initMeter)

	if triggerCounter != nil {
		triggerCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
	}
}

func recordDropped(ctx context.Context, reason models.TriggerReason) {
	meterOnce.Do(initMeter)

	if droppedCounter != nil {
		droppedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", string(reason))))
	}
}
