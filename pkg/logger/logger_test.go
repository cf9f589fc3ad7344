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
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected zerolog.Level
		wantErr  bool
	}{
		{name: "default info", config: &Config{}, expected: zerolog.InfoLevel},
		{name: "explicit warn", config: &Config{Level: "warn"}, expected: zerolog.WarnLevel},
		{name: "debug flag wins", config: &Config{Level: "error", Debug: true}, expected: zerolog.DebugLevel},
		{name: "invalid level", config: &Config{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewWithWriter(&bytes.Buffer{}, tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, log.GetLevel())
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, &Config{Level: "debug"})
	require.NoError(t, err)

	log.WithComponent("prtg").Info().Int("consumed", 10).Msg("progress")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "prtg", entry["component"])
	assert.Equal(t, "progress", entry["message"])
	assert.InDelta(t, 10, entry["consumed"], 0)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, &Config{})
	require.NoError(t, err)

	log.WithFields(map[string]interface{}{"run_id": "abc"}).Warn().Msg("hello")

	assert.Contains(t, buf.String(), `"run_id":"abc"`)
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(&buf, &Config{})
	require.NoError(t, err)

	log.SetLevel(zerolog.ErrorLevel)
	log.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestNew_InvalidOutput(t *testing.T) {
	_, err := New(&Config{Output: "syslog"})
	require.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_OUTPUT", "")
	t.Setenv("OTEL_TRACES_ENABLED", "yes")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-token = abc, broken")

	config := DefaultConfig()

	assert.Equal(t, "debug", config.Level)
	assert.Equal(t, outputStderr, config.Output)
	assert.True(t, config.Tracing.Enabled)
	assert.Equal(t, map[string]string{"x-token": "abc"}, config.Tracing.Headers)
	assert.Equal(t, "prtgcli", config.Tracing.ServiceName)
}

func TestNewTestLogger_Discards(t *testing.T) {
	log := NewTestLogger()

	assert.Equal(t, zerolog.Disabled, log.GetLevel())
	log.Error().Msg("nothing happens")
}

func TestInitializeTracing(t *testing.T) {
	tp, err := InitializeTracing(context.Background(), TracingConfig{})
	require.NoError(t, err)
	require.NotNil(t, tp)

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := GetTracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()
}

func TestInitializeTracing_RequiresEndpoint(t *testing.T) {
	_, err := InitializeTracing(context.Background(), TracingConfig{Enabled: true})
	require.ErrorIs(t, err, ErrTracingEndpointRequired)
}

func TestInitializeMetrics_Disabled(t *testing.T) {
	_, err := InitializeMetrics(context.Background(), MetricsConfig{})
	require.ErrorIs(t, err, ErrOTelMetricsDisabled)

	_, err = InitializeMetrics(context.Background(), MetricsConfig{Enabled: true})
	require.ErrorIs(t, err, ErrOTelMetricsDisabled)
}

func TestSetup_SkipsUnavailableExporters(t *testing.T) {
	config := &Config{
		Level:   "info",
		Output:  outputStderr,
		OTel:    OTelConfig{Enabled: true},
		Metrics: MetricsConfig{Enabled: true},
	}

	log, telemetry, err := Setup(context.Background(), config)
	require.NoError(t, err)
	require.NotNil(t, log)

	// Only the tracer provider is installed.
	assert.Len(t, telemetry.shutdowns, 1)
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestSetup_InvalidOutput(t *testing.T) {
	_, _, err := Setup(context.Background(), &Config{Output: "syslog"})
	require.ErrorIs(t, err, ErrInvalidOutput)
}

func TestTelemetry_ShutdownJoinsErrors(t *testing.T) {
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	var calls int

	telemetry := &Telemetry{shutdowns: []func(context.Context) error{
		func(context.Context) error { calls++; return errFirst },
		func(context.Context) error { calls++; return nil },
		func(context.Context) error { calls++; return errSecond },
	}}

	err := telemetry.Shutdown(context.Background())
	require.ErrorIs(t, err, errFirst)
	require.ErrorIs(t, err, errSecond)
	assert.Equal(t, 3, calls)
}
