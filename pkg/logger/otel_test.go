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
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

type captureExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *captureExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}

	return nil
}

func (*captureExporter) Shutdown(context.Context) error   { return nil }
func (*captureExporter) ForceFlush(context.Context) error { return nil }

func (e *captureExporter) Records() []sdklog.Record {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]sdklog.Record(nil), e.records...)
}

func newCaptureWriter(t *testing.T) (*OTelWriter, *captureExporter) {
	t.Helper()

	exp := &captureExporter{}
	provider := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exp)))

	w := newOTelWriter(context.Background(), provider)
	t.Cleanup(func() { _ = w.Shutdown(context.Background()) })

	return w, exp
}

func recordAttributes(r *sdklog.Record) map[string]string {
	attrs := make(map[string]string)

	r.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()

		return true
	})

	return attrs
}

func TestOTelWriter_EmitsRecords(t *testing.T) {
	w, exp := newCaptureWriter(t)

	log, err := NewWithWriter(w, &Config{Level: "debug"})
	require.NoError(t, err)

	log.WithComponent("tagger").Warn().
		Int("device", 1001).
		Str("tags", "core switch").
		Msg("Updating tags")

	records := exp.Records()
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Updating tags", r.Body().AsString())
	assert.Equal(t, otellog.SeverityWarn, r.Severity())
	assert.Equal(t, "warn", r.SeverityText())
	assert.Equal(t, "tagger", r.InstrumentationScope().Name)
	assert.WithinDuration(t, time.Now(), r.Timestamp(), time.Minute)

	attrs := recordAttributes(&r)
	assert.Equal(t, "1001", attrs["device"])
	assert.Equal(t, "core switch", attrs["tags"])
	assert.NotContains(t, attrs, "component")
	assert.NotContains(t, attrs, "message")
}

func TestOTelWriter_DefaultScopeAndNonJSON(t *testing.T) {
	w, exp := newCaptureWriter(t)

	n, err := w.Write([]byte("not json\n"))
	require.NoError(t, err)
	assert.Equal(t, len("not json\n"), n)
	assert.Empty(t, exp.Records())

	_, err = w.Write([]byte(`{"level":"info","message":"hello","extra":null}`))
	require.NoError(t, err)

	records := exp.Records()
	require.Len(t, records, 1)
	assert.Equal(t, defaultLoggerScope, records[0].InstrumentationScope().Name)
	assert.Equal(t, "null", recordAttributes(&records[0])["extra"])
}

func TestNewOTelWriter_Validation(t *testing.T) {
	_, err := NewOTelWriter(context.Background(), OTelConfig{})
	require.ErrorIs(t, err, ErrOTelLoggingDisabled)

	_, err = NewOTelWriter(context.Background(), OTelConfig{Enabled: true})
	require.ErrorIs(t, err, ErrOTelEndpointRequired)
}

func TestMapZerologLevelToOTEL(t *testing.T) {
	tests := map[string]otellog.Severity{
		"trace":   otellog.SeverityTrace,
		"debug":   otellog.SeverityDebug,
		"info":    otellog.SeverityInfo,
		"WARN":    otellog.SeverityWarn,
		"warning": otellog.SeverityWarn,
		"error":   otellog.SeverityError,
		"fatal":   otellog.SeverityFatal,
		"panic":   otellog.SeverityFatal,
		"":        otellog.SeverityInfo,
	}

	for level, want := range tests {
		assert.Equal(t, want, mapZerologLevelToOTEL(level), "level %q", level)
	}
}

func TestFormatAttributeValue(t *testing.T) {
	assert.Equal(t, "null", formatAttributeValue(nil))
	assert.Equal(t, "true", formatAttributeValue(true))
	assert.Equal(t, "42", formatAttributeValue(float64(42)))
	assert.JSONEq(t, `{"a":[1,2]}`, formatAttributeValue(map[string]interface{}{"a": []interface{}{1, 2}}))

	long := formatAttributeValue(strings.Repeat("x", maxAttributeValueLength+10))
	assert.Len(t, long, maxAttributeValueLength)
	assert.True(t, strings.HasSuffix(long, "..."))
}
