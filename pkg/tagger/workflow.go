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

// Package tagger re-tags the parent devices of a set of sensors, one
// operator-approved update at a time.
package tagger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/carverauto/prtgcli/pkg/logger"
	"github.com/carverauto/prtgcli/pkg/prtg"
)

const tagsProperty = "tags"

// Job is the pending tag update for one parent device.
type Job struct {
	ParentID int
	// Sensor is the first sensor seen under ParentID.
	Sensor  prtg.Sensor
	Device  *prtg.Device
	Applied bool
}

// Workflow runs the parent-tag workflow.
type Workflow struct {
	devices  DeviceService
	approver Approver
	out      io.Writer
	logger   logger.Logger
}

// NewWorkflow creates a Workflow. Preview and review lines go to out.
func NewWorkflow(devices DeviceService, approver Approver, out io.Writer, log logger.Logger) *Workflow {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Workflow{
		devices:  devices,
		approver: approver,
		out:      out,
		logger:   log.WithComponent("tagger"),
	}
}

// PlanJobs groups sensors by parent device, keeping the first sensor seen for
// each parent. Jobs are ordered by first appearance.
func PlanJobs(sensors []prtg.Sensor) []*Job {
	seen := make(map[int]struct{}, len(sensors))
	jobs := make([]*Job, 0, len(sensors))

	for _, s := range sensors {
		if _, ok := seen[s.ParentID]; ok {
			continue
		}

		seen[s.ParentID] = struct{}{}
		jobs = append(jobs, &Job{ParentID: s.ParentID, Sensor: s})
	}

	return jobs
}

// TagSensorParents sets the tags property of every distinct parent device of
// sensors to newTags. All parents are resolved and previewed before the first
// update. Each update needs its own approval; a refusal stops the run with
// ErrUserCancelled. The returned count covers updates already applied, which
// are never rolled back.
func (w *Workflow) TagSensorParents(ctx context.Context, sensors []prtg.Sensor, newTags string) (int, error) {
	if len(sensors) == 0 {
		return 0, nil
	}

	if strings.TrimSpace(newTags) == "" {
		return 0, errNoNewTags
	}

	log := w.logger.WithFields(map[string]interface{}{"run_id": uuid.NewString()})

	jobs := PlanJobs(sensors)

	log.Info().
		Int("sensors", len(sensors)).
		Int("parents", len(jobs)).
		Msg("Resolving parent devices")

	for i, job := range jobs {
		device, err := w.devices.LookupDevice(ctx, job.ParentID)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve parent %d of sensor %d: %w", job.ParentID, job.Sensor.ObjID, err)
		}

		job.Device = device

		w.printf("%s\n", device.Summary(i))
	}

	w.printf("PLEASE REVIEW YOUR CHANGES BEFORE CONTINUING:\n")

	tokens := strings.Fields(newTags)
	applied := 0

	for _, job := range jobs {
		w.printf("%d: DEVICE: %s Will update tags: [%s]\n", job.ParentID, job.Device.Name, strings.Join(tokens, " "))

		ok, err := w.approver.Approve(ctx, job)
		if err != nil {
			return applied, fmt.Errorf("confirmation for device %d failed: %w", job.ParentID, err)
		}

		if !ok {
			log.Warn().
				Int("objid", job.ParentID).
				Int("applied", applied).
				Msg("Update declined, stopping")

			return applied, ErrUserCancelled
		}

		if err := w.devices.SetObjectProperty(ctx, job.ParentID, tagsProperty, newTags); err != nil {
			log.Error().Err(err).
				Int("objid", job.ParentID).
				Int("applied", applied).
				Msg("Tag update failed, stopping")

			return applied, fmt.Errorf("failed to update tags on device %d: %w", job.ParentID, err)
		}

		job.Applied = true
		applied++

		log.Info().
			Int("objid", job.ParentID).
			Str("device", job.Device.Name).
			Msg("Tags updated")
	}

	return applied, nil
}

func (w *Workflow) printf(format string, args ...any) {
	if w.out == nil {
		return
	}

	_, _ = fmt.Fprintf(w.out, format, args...)
}
