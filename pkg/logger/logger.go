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

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	outputStdout = "stdout"
	outputStderr = "stderr"
)

type zlogger struct {
	logger zerolog.Logger
}

// New builds a Logger from config. A nil config falls back to DefaultConfig.
func New(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output, err := outputWriter(config.Output)
	if err != nil {
		return nil, err
	}

	return NewWithWriter(output, config)
}

func outputWriter(output string) (io.Writer, error) {
	switch output {
	case outputStdout:
		return os.Stdout, nil
	case outputStderr, "":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutput, output)
	}
}

// Telemetry owns the OpenTelemetry providers installed by Setup.
type Telemetry struct {
	shutdowns []func(context.Context) error
}

// Shutdown flushes and stops every provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	for _, shutdown := range t.shutdowns {
		if err := shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Setup builds the process logger and installs tracing, metrics and OTLP log
// export as configured. An exporter that cannot be created is logged and
// skipped; only logger construction errors are returned.
func Setup(ctx context.Context, config *Config) (Logger, *Telemetry, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output, err := outputWriter(config.Output)
	if err != nil {
		return nil, nil, err
	}

	telemetry := &Telemetry{}

	var otelErr error

	if config.OTel.Enabled {
		w, err := NewOTelWriter(ctx, config.OTel)
		if err != nil {
			otelErr = err
		} else {
			output = zerolog.MultiLevelWriter(output, w)
			telemetry.shutdowns = append(telemetry.shutdowns, w.Shutdown)
		}
	}

	log, err := NewWithWriter(output, config)
	if err != nil {
		return nil, nil, err
	}

	if otelErr != nil {
		log.Warn().Err(otelErr).Msg("OTLP log export disabled")
	}

	tp, err := InitializeTracing(ctx, config.Tracing)
	if err != nil {
		log.Warn().Err(err).Msg("Tracing disabled")
	} else {
		telemetry.shutdowns = append(telemetry.shutdowns, tp.Shutdown)
	}

	if config.Metrics.Enabled {
		mp, err := InitializeMetrics(ctx, config.Metrics)
		if err != nil {
			log.Warn().Err(err).Msg("Metrics export disabled")
		} else {
			telemetry.shutdowns = append(telemetry.shutdowns, mp.Shutdown)
		}
	}

	return log, telemetry, nil
}

// NewWithWriter builds a Logger that writes to w.
func NewWithWriter(w io.Writer, config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	zlog := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &zlogger{logger: zlog}, nil
}

func (l *zlogger) Trace() *zerolog.Event { return l.logger.Trace() }
func (l *zlogger) Debug() *zerolog.Event { return l.logger.Debug() }
func (l *zlogger) Info() *zerolog.Event  { return l.logger.Info() }
func (l *zlogger) Warn() *zerolog.Event  { return l.logger.Warn() }
func (l *zlogger) Error() *zerolog.Event { return l.logger.Error() }
func (l *zlogger) With() zerolog.Context { return l.logger.With() }

func (l *zlogger) WithComponent(component string) Logger {
	return &zlogger{logger: l.logger.With().Str("component", component).Logger()}
}

func (l *zlogger) WithFields(fields map[string]interface{}) Logger {
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}

	return &zlogger{logger: ctx.Logger()}
}

func (l *zlogger) SetLevel(level zerolog.Level) {
	l.logger = l.logger.Level(level)
}

func (l *zlogger) GetLevel() zerolog.Level {
	return l.logger.GetLevel()
}
