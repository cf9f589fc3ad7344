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

// Package main is prtg-tagger, which searches PRTG objects and re-tags the
// parent devices of matching sensors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carverauto/prtgcli/pkg/cli"
	"github.com/carverauto/prtgcli/pkg/config"
	"github.com/carverauto/prtgcli/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.ParseTaggerFlags(os.Args[1:])

	switch {
	case errors.Is(err, flag.ErrHelp) || (err == nil && cfg.Help):
		cli.ShowTaggerHelp(os.Stdout)

		return cli.ExitOK
	case err != nil:
		cli.PrintError(os.Stderr, err)
		cli.ShowTaggerHelp(os.Stderr)

		return cli.ExitFailure
	case cfg.Version:
		fmt.Println(version.Banner("prtg-tagger"))

		return cli.ExitOK
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	return cli.Execute(ctx, cli.Invocation{
		Level: cfg.Level,
		Overrides: map[string]string{
			config.EnvEndpoint: cfg.Endpoint,
			config.EnvUsername: cfg.Username,
			config.EnvPassword: cfg.Password,
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Run: func(ctx context.Context, r *cli.Runner) error {
			return r.RunTagger(ctx, cfg)
		},
	})
}
