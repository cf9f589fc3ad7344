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

//go:generate mockgen -destination=mock_cli.go -package=cli github.com/carverauto/prtgcli/pkg/cli Service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/carverauto/prtgcli/pkg/config"
	"github.com/carverauto/prtgcli/pkg/logger"
	"github.com/carverauto/prtgcli/pkg/prtg"
	"github.com/carverauto/prtgcli/pkg/tagger"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitCancelled = 2
)

// Service is the part of *prtg.Client the commands use.
type Service interface {
	tagger.DeviceService
	Sensors(ctx context.Context, filters prtg.Filters) ([]prtg.Sensor, error)
	Devices(ctx context.Context, filters prtg.Filters) ([]prtg.Device, error)
	Status(ctx context.Context) (prtg.Status, error)
}

var _ Service = (*prtg.Client)(nil)

// NewClient builds a PRTG client from loaded configuration.
func NewClient(conf *config.Config, log logger.Logger) *prtg.Client {
	gateway := prtg.NewHTTPGateway(prtg.GatewayOptions{
		Timeout:            conf.Timeout,
		InsecureSkipVerify: conf.InsecureSkipVerify,
		RateLimit:          conf.RateLimit,
		Logger:             log,
	})

	return prtg.NewClient(conf.Endpoint,
		prtg.Credentials{Username: conf.Username, Password: conf.Password},
		prtg.WithGateway(gateway),
		prtg.WithPageSize(conf.PageSize),
		prtg.WithLogger(log))
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, tagger.ErrUserCancelled):
		return ExitCancelled
	default:
		return ExitFailure
	}
}

// Runner executes parsed commands against a Service.
type Runner struct {
	service  Service
	approver tagger.Approver
	out      io.Writer
	logger   logger.Logger
}

// NewRunner creates a Runner writing command output to out.
func NewRunner(service Service, approver tagger.Approver, out io.Writer, log logger.Logger) *Runner {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Runner{
		service:  service,
		approver: approver,
		out:      out,
		logger:   log.WithComponent("cli"),
	}
}

// Run executes a prtgcli subcommand.
func (r *Runner) Run(ctx context.Context, cfg *CmdConfig) error {
	switch cfg.SubCmd {
	case "ls":
		if cfg.Parents {
			return r.listParents(ctx, cfg)
		}

		return r.list(ctx, cfg, RenderResults)
	case "table":
		return r.list(ctx, cfg, RenderTable)
	case "status":
		status, err := r.service.Status(ctx)
		if err != nil {
			return err
		}

		return RenderStatus(r.out, status)
	case "tag":
		return r.tagParents(ctx, selectionFilters(cfg.Tags, cfg.ObjID), cfg.NewTags)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, cfg.SubCmd)
	}
}

// RunTagger executes a prtg-tagger invocation.
func (r *Runner) RunTagger(ctx context.Context, cfg *CmdConfig) error {
	filters := selectionFilters(cfg.Tags, cfg.ObjID)

	switch {
	case cfg.TagSensorParents:
		return r.tagParents(ctx, filters, cfg.NewTags)
	case cfg.Device:
		records, err := r.fetch(ctx, string(prtg.QueryDevices), filters)
		if err != nil {
			return err
		}

		return RenderResults(r.out, records)
	case cfg.Sensor:
		records, err := r.fetch(ctx, string(prtg.QuerySensors), filters)
		if err != nil {
			return err
		}

		return RenderResults(r.out, records)
	default:
		return errNoTaggerAction
	}
}

func (r *Runner) fetch(ctx context.Context, content string, filters prtg.Filters) ([]prtg.Record, error) {
	if content == string(prtg.QuerySensors) {
		sensors, err := r.service.Sensors(ctx, filters)

		return asRecords(sensors), err
	}

	devices, err := r.service.Devices(ctx, filters)

	return asRecords(devices), err
}

func (r *Runner) list(ctx context.Context, cfg *CmdConfig, render func(io.Writer, []prtg.Record) error) error {
	filters, err := ParseFilterString(cfg.Filter)
	if err != nil {
		return err
	}

	records, err := r.fetch(ctx, cfg.Content, filters)
	if err != nil {
		return err
	}

	if err := sortRecords(records, cfg.SortBy); err != nil {
		return err
	}

	r.logger.Debug().
		Str("content", cfg.Content).
		Int("count", len(records)).
		Msg("Rendering objects")

	return render(r.out, records)
}

// listParents prints the distinct parent devices of the matching sensors.
func (r *Runner) listParents(ctx context.Context, cfg *CmdConfig) error {
	filters, err := ParseFilterString(cfg.Filter)
	if err != nil {
		return err
	}

	sensors, err := r.service.Sensors(ctx, filters)
	if err != nil {
		return err
	}

	jobs := tagger.PlanJobs(sensors)
	parents := make([]prtg.Record, 0, len(jobs))

	for _, job := range jobs {
		device, err := r.service.LookupDevice(ctx, job.ParentID)
		if err != nil {
			return err
		}

		parents = append(parents, *device)
	}

	if err := sortRecords(parents, cfg.SortBy); err != nil {
		return err
	}

	return RenderResults(r.out, parents)
}

func (r *Runner) tagParents(ctx context.Context, filters prtg.Filters, newTags string) error {
	sensors, err := r.service.Sensors(ctx, filters)
	if err != nil {
		return err
	}

	if len(sensors) == 0 {
		_, err := fmt.Fprintln(r.out, newStyles().warning.Render("no sensors matched, nothing to tag"))

		return err
	}

	applied, err := tagger.NewWorkflow(r.service, r.approver, r.out, r.logger).
		TagSensorParents(ctx, sensors, newTags)

	r.logger.Info().Int("applied", applied).Msg("Tagging finished")

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.out, newStyles().success.Render(fmt.Sprintf("updated %d device(s)", applied)))

	return err
}
