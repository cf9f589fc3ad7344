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
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/carverauto/prtgcli/pkg/logger"
)

const (
	defaultTimeout = 30 * time.Second
	tracerName     = "github.com/carverauto/prtgcli/pkg/prtg"
)

// GatewayOptions configures an HTTPGateway. Zero values select defaults.
type GatewayOptions struct {
	// HTTPClient overrides the default *http.Client; Timeout and
	// InsecureSkipVerify are ignored when it is set.
	HTTPClient         HTTPClient
	Timeout            time.Duration
	InsecureSkipVerify bool
	// RateLimit caps requests per second. Zero disables pacing.
	RateLimit float64
	Logger    logger.Logger
	Tracer    trace.Tracer
	Meter     metric.Meter
}

// HTTPGateway is the net/http backed Gateway.
type HTTPGateway struct {
	client  HTTPClient
	limiter *rate.Limiter
	tracer  trace.Tracer
	metrics *gatewayMetrics
	logger  logger.Logger
}

var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway creates a gateway from opts.
func NewHTTPGateway(opts GatewayOptions) *HTTPGateway {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}

		//nolint:gosec // InsecureSkipVerify is an explicit operator opt-in
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: opts.InsecureSkipVerify,
				},
			},
		}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	meter := opts.Meter
	if meter == nil {
		meter = otel.Meter(tracerName)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &HTTPGateway{
		client:  client,
		limiter: limiter,
		tracer:  tracer,
		metrics: newGatewayMetrics(meter),
		logger:  log.WithComponent("gateway"),
	}
}

// Get issues a GET and decodes the JSON object in the response body.
func (g *HTTPGateway) Get(ctx context.Context, rawURL string) (map[string]json.RawMessage, error) {
	body, err := g.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return nil, err
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &QueryFailure{
			Method: http.MethodGet,
			URL:    RedactURL(rawURL),
			Body:   body,
			Err:    fmt.Errorf("failed to parse response: %w", err),
		}
	}

	return decoded, nil
}

// Post issues a POST without a body. It is never retried.
func (g *HTTPGateway) Post(ctx context.Context, rawURL string) error {
	_, err := g.do(ctx, http.MethodPost, rawURL)

	return err
}

func (g *HTTPGateway) do(ctx context.Context, method, rawURL string) ([]byte, error) {
	redacted := RedactURL(rawURL)
	start := time.Now()

	ctx, span := g.tracer.Start(ctx, "prtg."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", redacted),
		))
	defer span.End()

	fail := func(qf *QueryFailure) ([]byte, error) {
		span.RecordError(qf)
		span.SetStatus(codes.Error, qf.Error())
		g.metrics.record(ctx, method, qf.StatusCode, time.Since(start), qf)

		return nil, qf
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return fail(&QueryFailure{Method: method, URL: redacted, Err: err})
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, http.NoBody)
	if err != nil {
		return fail(&QueryFailure{Method: method, URL: redacted, Err: err})
	}

	req.Header.Set("Accept", "application/json")

	g.logger.Debug().Str("method", method).Str("url", redacted).Msg("Sending request")

	resp, err := g.client.Do(req)
	if err != nil {
		return fail(&QueryFailure{Method: method, URL: redacted, Err: err})
	}
	defer g.closeResponse(resp)

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(&QueryFailure{
			Method: method,
			URL:    redacted,
			Err:    fmt.Errorf("failed to read response body: %w", err),
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fail(&QueryFailure{
			Method:     method,
			URL:        redacted,
			StatusCode: resp.StatusCode,
			Body:       body,
		})
	}

	g.logger.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received response")

	g.metrics.record(ctx, method, resp.StatusCode, time.Since(start), nil)

	return body, nil
}

func (g *HTTPGateway) closeResponse(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		g.logger.Warn().Err(err).Msg("Failed to close response body")
	}
}
