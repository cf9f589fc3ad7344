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

package tagger

//go:generate mockgen -destination=mock_tagger.go -package=tagger github.com/carverauto/prtgcli/pkg/tagger DeviceService,Approver

import (
	"context"

	"github.com/carverauto/prtgcli/pkg/prtg"
)

// DeviceService resolves devices and mutates their properties.
// *prtg.Client satisfies it.
type DeviceService interface {
	LookupDevice(ctx context.Context, objid int) (*prtg.Device, error)
	SetObjectProperty(ctx context.Context, id int, name, value string) error
}

// Approver gates each mutation. Approve blocks until the operator answers.
type Approver interface {
	Approve(ctx context.Context, job *Job) (bool, error)
}

// ApproverFunc adapts a function to the Approver interface.
type ApproverFunc func(ctx context.Context, job *Job) (bool, error)

// Approve implements Approver.
func (f ApproverFunc) Approve(ctx context.Context, job *Job) (bool, error) {
	return f(ctx, job)
}

var _ DeviceService = (*prtg.Client)(nil)
