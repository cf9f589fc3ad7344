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


package prtg

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRequestsTotal   = "prtg.client.requests"
	metricRequestDuration = "prtg.client.request.duration"

	outcomeOK     = "ok"
	outcomeFailed = "error"
)

type gatewayMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newGatewayMetrics(meter metric.Meter) *gatewayMetrics {
	m := &gatewayMetrics{}

	counter, err := meter.Int64Counter(
		metricRequestsTotal,
		metric.WithDescription("Total requests sent to the PRTG API"),
	)
	if err != nil {
		otel.Handle(err)
	}
	m.requests = counter

	hist, err := meter.Float64Histogram(
		metricRequestDuration,
		metric.WithDescription("Latency of PRTG API requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		otel.Handle(err)
	}
	m.duration = hist

	return m
}

// record captures one finished request. statusCode is 0 when no response arrived.
func (m *gatewayMetrics) record(ctx context.Context, method string, statusCode int, elapsed time.Duration, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeFailed
	}

	attrs := metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", statusCode),
		attribute.String("outcome", outcome),
	)

	if m.requests != nil {
		m.requests.Add(ctx, 1, attrs)
	}

	if m.duration != nil {
		m.duration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
