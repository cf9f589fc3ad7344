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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *CmdConfig
		wantErr error
	}{
		{
			name: "ls defaults",
			args: []string{"ls"},
			want: &CmdConfig{SubCmd: "ls", Content: "devices", SortBy: "objid", Args: []string{}},
		},
		{
			name: "ls short flags",
			args: []string{"-l", "debug", "ls", "-c", "sensors", "-f", "tags=ping", "-s", "name", "-p"},
			want: &CmdConfig{
				SubCmd: "ls", Level: "debug", Content: "sensors", Filter: "tags=ping", SortBy: "name", Parents: true,
				Args: []string{"-c", "sensors", "-f", "tags=ping", "-s", "name", "-p"},
			},
		},
		{
			name: "table long flags",
			args: []string{"table", "-content", "sensors", "-filter-string", "status=up", "-sort-by", "tags"},
			want: &CmdConfig{
				SubCmd: "table", Content: "sensors", Filter: "status=up", SortBy: "tags",
				Args: []string{"-content", "sensors", "-filter-string", "status=up", "-sort-by", "tags"},
			},
		},
		{
			name: "status",
			args: []string{"--level", "warn", "status"},
			want: &CmdConfig{SubCmd: "status", Level: "warn", Args: []string{}},
		},
		{
			name: "tag",
			args: []string{"tag", "-tags", "ping", "-objid", "42", "-new-tags", "core switch"},
			want: &CmdConfig{
				SubCmd: "tag", Tags: "ping", ObjID: 42, NewTags: "core switch",
				Args: []string{"-tags", "ping", "-objid", "42", "-new-tags", "core switch"},
			},
		},
		{name: "help", args: []string{"-help"}, want: &CmdConfig{Help: true}},
		{name: "version", args: []string{"-version"}, want: &CmdConfig{Version: true}},
		{name: "missing command", args: nil, wantErr: errMissingCommand},
		{name: "unknown command", args: []string{"rm"}, wantErr: errUnknownCommand},
		{name: "bad content", args: []string{"ls", "-c", "probes"}, wantErr: errInvalidContent},
		{name: "parents need sensors", args: []string{"ls", "-p"}, wantErr: errParentsNeedSensors},
		{name: "tag needs selection", args: []string{"tag", "-new-tags", "x"}, wantErr: errMissingSelection},
		{name: "tag needs new tags", args: []string{"tag", "-tags", "ping"}, wantErr: errMissingNewTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"ls", "-x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing ls flags")
}

func TestParseTaggerFlags(t *testing.T) {
	cfg, err := ParseTaggerFlags([]string{
		"--endpoint", "https://prtg", "--username", "admin", "--password", "pw",
		"--tags", "ping", "--new_tags", "a b", "--tag-sensor-parents",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://prtg", cfg.Endpoint)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "pw", cfg.Password)
	assert.Equal(t, "ping", cfg.Tags)
	assert.Equal(t, "a b", cfg.NewTags)
	assert.True(t, cfg.TagSensorParents)

	cfg, err = ParseTaggerFlags([]string{"--device", "--objid", "7"})
	require.NoError(t, err)
	assert.True(t, cfg.Device)
	assert.Equal(t, 7, cfg.ObjID)

	_, err = ParseTaggerFlags([]string{"--tags", "ping"})
	require.ErrorIs(t, err, errNoTaggerAction)

	_, err = ParseTaggerFlags([]string{"--tag-sensor-parents", "--tags", "ping"})
	require.ErrorIs(t, err, errMissingNewTags)
}
