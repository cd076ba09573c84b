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

package logger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationAcceptsStringOrNanoseconds(t *testing.T) {
	for input, want := range map[string]time.Duration{
		`"250ms"`:    250 * time.Millisecond,
		`"1m30s"`:    90 * time.Second,
		`2000000000`: 2 * time.Second,
		`0`:          0,
	} {
		var d Duration

		require.NoError(t, json.Unmarshal([]byte(input), &d), input)
		assert.Equal(t, Duration(want), d, input)
	}
}

func TestDurationRejectsOtherShapes(t *testing.T) {
	for _, input := range []string{`"fast"`, `true`, `{"s":1}`, `["1s"]`} {
		var d Duration

		err := json.Unmarshal([]byte(input), &d)
		assert.Error(t, err, input)
	}

	var d Duration

	assert.ErrorIs(t, json.Unmarshal([]byte(`false`), &d), errInvalidDuration)
}

func TestDurationMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(struct {
		BatchTimeout Duration `json:"batch_timeout"`
	}{Duration(1500 * time.Millisecond)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"batch_timeout":"1.5s"}`, string(out))

	var back struct {
		BatchTimeout Duration `json:"batch_timeout"`
	}

	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, Duration(1500*time.Millisecond), back.BatchTimeout)
}

func TestLoggingSectionOverridesDefaults(t *testing.T) {
	cfg := DefaultConfig()

	err := json.Unmarshal([]byte(`{
		"level": "warn",
		"otel": {
			"enabled": true,
			"endpoint": "collector:4317",
			"service_name": "sensorpoll-edge",
			"batch_timeout": "2s",
			"headers": {"x-api-key": "k"}
		}
	}`), cfg)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, "collector:4317", cfg.OTel.Endpoint)
	assert.Equal(t, "sensorpoll-edge", cfg.OTel.ServiceName)
	assert.Equal(t, Duration(2*time.Second), cfg.OTel.BatchTimeout)
	assert.Equal(t, map[string]string{"x-api-key": "k"}, cfg.OTel.Headers)
	assert.Nil(t, cfg.OTel.TLS)
}

func TestDefaultOTelConfigFromEnvironment(t *testing.T) {
	t.Setenv("OTEL_LOGS_ENABLED", "yes")
	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_HEADERS", "a=1, b = 2,broken")
	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_TIMEOUT", "750ms")

	cfg := DefaultOTelConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "otel:4317", cfg.Endpoint)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, cfg.Headers)
	assert.Equal(t, Duration(750*time.Millisecond), cfg.BatchTimeout)

	t.Setenv("OTEL_EXPORTER_OTLP_LOGS_TIMEOUT", "later")
	assert.Equal(t, Duration(5*time.Second), DefaultOTelConfig().BatchTimeout)
}
