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
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	config := &Config{
		Level:  "debug",
		Debug:  true,
		Output: "stdout",
	}

	l, err := New(context.Background(), config)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	if l.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", l.GetLevel())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(context.Background(), &Config{Level: "loud"})
	if err == nil {
		t.Fatal("Expected error for invalid level")
	}
}

func TestSetDebug(t *testing.T) {
	l, err := New(context.Background(), &Config{Level: "info"})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	l.SetDebug(true)

	if l.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level after SetDebug(true), got %v", l.GetLevel())
	}

	l.SetDebug(false)

	if l.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level after SetDebug(false), got %v", l.GetLevel())
	}
}

func TestNamedAddsComponentField(t *testing.T) {
	var buf bytes.Buffer

	base := &ZerologLogger{logger: zerolog.New(&buf)}
	base.Named("poller").Info().Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line: %v", err)
	}

	if entry["component"] != "poller" {
		t.Errorf("Expected component poller, got %v", entry["component"])
	}
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer

	mw := NewMultiWriter(&a, &b)

	n, err := mw.Write([]byte("line"))
	if err != nil || n != 4 {
		t.Fatalf("Unexpected write result n=%d err=%v", n, err)
	}

	if a.String() != "line" || b.String() != "line" {
		t.Errorf("Expected both writers to receive the line, got %q and %q", a.String(), b.String())
	}
}

func TestOTELWriterDisabled(t *testing.T) {
	_, err := NewOTELWriter(context.Background(), OTelConfig{Enabled: false})
	if err != ErrOTelLoggingDisabled {
		t.Errorf("Expected ErrOTelLoggingDisabled, got %v", err)
	}

	_, err = NewOTELWriter(context.Background(), OTelConfig{Enabled: true})
	if err != ErrOTelEndpointRequired {
		t.Errorf("Expected ErrOTelEndpointRequired, got %v", err)
	}
}

func TestInitializeMetricsDisabled(t *testing.T) {
	_, err := InitializeMetrics(context.Background(), MetricsConfig{})
	if err != ErrOTelMetricsDisabled {
		t.Errorf("Expected ErrOTelMetricsDisabled, got %v", err)
	}
}

func TestTestLoggerDiscards(t *testing.T) {
	l := NewTestLogger()
	l.Info().Str("k", "v").Msg("discarded")

	if l.WithComponent("x").GetLevel() != zerolog.Disabled {
		t.Error("Test logger should stay disabled")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level == "" {
		t.Error("Default config should have a level set")
	}

	if config.Output == "" {
		t.Error("Default config should have an output set")
	}
}
