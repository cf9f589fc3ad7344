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
	"errors"
	"os"
	"strings"
)

// ErrInvalidOutput is returned for an unknown LOG_OUTPUT value.
var ErrInvalidOutput = errors.New("invalid log output")

type Config struct {
	Level      string        `json:"level"`
	Debug      bool          `json:"debug"`
	Output     string        `json:"output"`
	TimeFormat string        `json:"time_format"`
	Tracing    TracingConfig `json:"tracing"`
	OTel       OTelConfig    `json:"otel"`
	Metrics    MetricsConfig `json:"metrics"`
}

// DefaultConfig reads logging settings from the environment. Output defaults
// to stderr so that command output on stdout stays machine readable.
func DefaultConfig() *Config {
	return &Config{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Debug:      getEnvBoolOrDefault("DEBUG", false),
		Output:     getEnvOrDefault("LOG_OUTPUT", outputStderr),
		TimeFormat: getEnvOrDefault("LOG_TIME_FORMAT", ""),
		Tracing:    DefaultTracingConfig(),
		OTel:       DefaultOTelConfig(),
		Metrics:    DefaultMetricsConfig(),
	}
}

// DefaultTracingConfig reads the OTLP trace exporter settings.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		Enabled:     getEnvBoolOrDefault("OTEL_TRACES_ENABLED", false),
		Endpoint:    getEnvOrDefault("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ""),
		Headers:     getEnvHeaders("OTEL_EXPORTER_OTLP_TRACES_HEADERS"),
		ServiceName: getEnvOrDefault("OTEL_SERVICE_NAME", "prtgcli"),
		Insecure:    getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_TRACES_INSECURE", false),
	}
}

// DefaultOTelConfig reads the OTLP log exporter settings.
func DefaultOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:     getEnvBoolOrDefault("OTEL_LOGS_ENABLED", false),
		Endpoint:    getEnvOrDefault("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", ""),
		Headers:     getEnvHeaders("OTEL_EXPORTER_OTLP_LOGS_HEADERS"),
		ServiceName: getEnvOrDefault("OTEL_SERVICE_NAME", "prtgcli"),
		Insecure:    getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_LOGS_INSECURE", false),
	}
}

// DefaultMetricsConfig reads the OTLP metric exporter settings.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:     getEnvBoolOrDefault("OTEL_METRICS_ENABLED", false),
		Endpoint:    getEnvOrDefault("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", ""),
		Headers:     getEnvHeaders("OTEL_EXPORTER_OTLP_METRICS_HEADERS"),
		ServiceName: getEnvOrDefault("OTEL_SERVICE_NAME", "prtgcli"),
		Insecure:    getEnvBoolOrDefault("OTEL_EXPORTER_OTLP_METRICS_INSECURE", false),
	}
}

// getEnvHeaders parses "k1=v1,k2=v2".
func getEnvHeaders(key string) map[string]string {
	headers := make(map[string]string)

	for _, pair := range strings.Split(os.Getenv(key), ",") {
		if k, v, ok := strings.Cut(pair, "="); ok {
			headers[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return headers
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	value = strings.ToLower(value)

	return value == "true" || value == "1" || value == "yes" || value == "on"
}
