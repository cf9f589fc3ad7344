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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL_Order(t *testing.T) {
	desc, ok := DefaultRegistry().Lookup(QuerySensors)
	if !ok {
		t.Fatal("sensors descriptor missing")
	}

	got := BuildURL(PageRequest{
		Endpoint:    "https://prtg.example.com/",
		Credentials: Credentials{Username: "admin", Password: "secret"},
		Descriptor:  desc,
		Limit:       500,
		Start:       1000,
		Filters:     Filters{}.Add("filter_tags", "linux").AddInt("filter_objid", 42),
	})

	want := "https://prtg.example.com/api/table.json?username=admin&password=secret&count=500&start=1000" +
		"&content=sensors&output=json&columns=objid,parentid,name,type,sensor,tags" +
		"&filter_tags=linux&filter_objid=42"

	assert.Equal(t, want, got)
}

func TestBuildURL_OmitsEmptyFilters(t *testing.T) {
	desc, _ := DefaultRegistry().Lookup(QueryDevices)

	got := BuildURL(PageRequest{
		Endpoint:    "http://prtg",
		Credentials: Credentials{Username: "u", Password: "p"},
		Descriptor:  desc,
		Limit:       10,
		Filters:     Filters{}.Add("tags", "").AddInt("objid", 42),
	})

	assert.Contains(t, got, "objid=42")
	assert.NotContains(t, got, "tags=")
}

func TestBuildURL_SkipsEmptyValuesInLiteralFilters(t *testing.T) {
	desc, _ := DefaultRegistry().Lookup(QueryDevices)

	got := BuildURL(PageRequest{
		Endpoint:   "http://prtg",
		Descriptor: desc,
		Filters:    Filters{{Key: "filter_tags", Value: ""}, {Key: "filter_name", Value: "core"}},
	})

	assert.NotContains(t, got, "filter_tags")
	assert.Contains(t, got, "&filter_name=core")
}

func TestBuildURL_NoColumnsOrArgs(t *testing.T) {
	desc, _ := DefaultRegistry().Lookup(QuerySetObjectProperty)

	got := BuildURL(PageRequest{
		Endpoint:    "http://prtg",
		Credentials: Credentials{Username: "u", Password: "p"},
		Descriptor:  desc,
		Limit:       500,
		Filters:     Filters{}.Add("name", "tags").Add("value", "a b").Add("id", "7"),
	})

	assert.Equal(t,
		"http://prtg/api/setobjectproperty.htm?username=u&password=p&count=500&start=0&name=tags&value=a+b&id=7",
		got)
	assert.NotContains(t, got, "columns=")
}

func TestBuildURL_EscapesCredentials(t *testing.T) {
	desc, _ := DefaultRegistry().Lookup(QueryStatus)

	got := BuildURL(PageRequest{
		Endpoint:    "http://prtg",
		Credentials: Credentials{Username: "ops team", Password: "p&ss=1"},
		Descriptor:  desc,
		Limit:       1,
	})

	assert.Contains(t, got, "username=ops+team&password=p%26ss%3D1&")
	assert.Contains(t, got, "&id=0")
}

func TestRedactURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "masks password",
			in:   "http://prtg/api/table.json?username=u&password=hunter2&count=5",
			want: "http://prtg/api/table.json?username=u&password=***&count=5",
		},
		{
			name: "no query",
			in:   "http://prtg/api/table.json",
			want: "http://prtg/api/table.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURL(tt.in))
		})
	}
}

func TestFilters_AddIntSkipsZero(t *testing.T) {
	f := Filters{}.AddInt("filter_objid", 0).Add("filter_tags", "x")

	assert.Equal(t, Filters{{Key: "filter_tags", Value: "x"}}, f)
}

func TestQueryDescriptor_IsImmutable(t *testing.T) {
	desc, _ := DefaultRegistry().Lookup(QuerySensors)

	cols := desc.Columns()
	cols[0] = "mutated"

	assert.Equal(t, "objid", desc.Columns()[0])
	assert.True(t, desc.HasColumn("parentid"))
	assert.False(t, desc.HasColumn("mutated"))
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	for _, q := range []QueryType{QuerySensors, QueryDevices, QuerySetObjectProperty, QueryStatus} {
		_, ok := r.Lookup(q)
		assert.True(t, ok, q)
	}

	_, ok := r.Lookup("probes")
	assert.False(t, ok)
}
