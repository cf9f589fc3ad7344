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
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTableGateway serves a table of total sequential records under key,
// honouring the start and count parameters of each request.
type fakeTableGateway struct {
	t      *testing.T
	key    string
	total  int
	gets   []string
	posts  []string
	failOn int // 1-based GET number that returns HTTP 500; 0 disables
}

func (f *fakeTableGateway) Get(_ context.Context, rawURL string) (map[string]json.RawMessage, error) {
	f.t.Helper()

	f.gets = append(f.gets, rawURL)

	if f.failOn == len(f.gets) {
		return nil, &QueryFailure{Method: "GET", URL: RedactURL(rawURL), StatusCode: 500, Body: []byte("boom")}
	}

	u, err := url.Parse(rawURL)
	require.NoError(f.t, err)

	start, err := strconv.Atoi(u.Query().Get("start"))
	require.NoError(f.t, err)

	count, err := strconv.Atoi(u.Query().Get("count"))
	require.NoError(f.t, err)

	records := make([]map[string]any, 0, count)
	for id := start; id < f.total && id < start+count; id++ {
		records = append(records, sensorJSON(id+1, 1000+id%3))
	}

	return pageBody(f.t, f.key, f.total, records), nil
}

func (f *fakeTableGateway) Post(_ context.Context, rawURL string) error {
	f.posts = append(f.posts, rawURL)

	return nil
}

func sensorJSON(objid, parentid int) map[string]any {
	return map[string]any{
		"objid":    objid,
		"parentid": parentid,
		"name":     fmt.Sprintf("sensor-%d", objid),
		"type":     "Ping",
		"sensor":   "Ping",
		"tags":     "pingsensor",
	}
}

func deviceJSON(objid int, name, tags string) map[string]any {
	return map[string]any{
		"objid":  objid,
		"name":   name,
		"type":   "Device",
		"host":   fmt.Sprintf("10.0.0.%d", objid%250),
		"device": name,
		"tags":   tags,
	}
}

func pageBody(t *testing.T, key string, treesize int, records []map[string]any) map[string]json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"prtg-version": "23.1.82.2175",
		"treesize":     treesize,
		key:            records,
	})
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))

	return body
}
