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

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/carverauto/prtgcli/pkg/config"
	"github.com/carverauto/prtgcli/pkg/logger"
	"github.com/carverauto/prtgcli/pkg/tagger"
	"github.com/carverauto/prtgcli/pkg/version"
)

const shutdownTimeout = 5 * time.Second

// Invocation describes one process run of a binary.
type Invocation struct {
	Level string
	// Overrides take precedence over environment variables of the same name.
	Overrides map[string]string
	Stdin     *os.File
	Stdout    io.Writer
	Stderr    io.Writer
	Run       func(ctx context.Context, r *Runner) error
}

// Execute sets up logging, telemetry and configuration, runs inv.Run and maps
// the outcome to an exit code. Configuration errors end the run before any
// request is made.
func Execute(ctx context.Context, inv Invocation) int {
	logConfig := logger.DefaultConfig()
	if inv.Level != "" {
		logConfig.Level = inv.Level
	}

	logConfig.Tracing.ServiceVersion = version.GetVersion()
	logConfig.Metrics.ServiceVersion = version.GetVersion()

	log, telemetry, err := logger.Setup(ctx, logConfig)
	if err != nil {
		PrintError(inv.Stderr, err)

		return ExitFailure
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Failed to flush telemetry")
		}
	}()

	conf, err := config.Load(ctx, log, inv.Overrides)
	if err != nil {
		PrintError(inv.Stderr, err)

		return ExitCode(err)
	}

	log.Debug().Object("config", conf).Msg("Configuration loaded")

	runner := NewRunner(NewClient(conf, log), NewApprover(inv.Stdin, inv.Stdout), inv.Stdout, log)

	err = inv.Run(ctx, runner)

	switch {
	case err == nil:
	case errors.Is(err, tagger.ErrUserCancelled):
		_, _ = fmt.Fprintln(inv.Stderr, newStyles().warning.Render("User cancelled; updates already applied were kept."))
	default:
		PrintError(inv.Stderr, err)
	}

	return ExitCode(err)
}
