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

import "slices"

// QueryType names a query descriptor in a Registry. For listing queries it is
// also the key holding the record list in the response body.
type QueryType string

const (
	QuerySensors           QueryType = "sensors"
	QueryDevices           QueryType = "devices"
	QuerySetObjectProperty QueryType = "setobjectproperty"
	QueryStatus            QueryType = "status"
)

// QueryDescriptor is the immutable definition of a queryable resource.
type QueryDescriptor struct {
	name      QueryType
	target    string
	fixedArgs []string
	columns   []string
}

// NewQueryDescriptor copies its slice arguments.
func NewQueryDescriptor(name QueryType, target string, fixedArgs, columns []string) QueryDescriptor {
	return QueryDescriptor{
		name:      name,
		target:    target,
		fixedArgs: slices.Clone(fixedArgs),
		columns:   slices.Clone(columns),
	}
}

func (d QueryDescriptor) Name() QueryType     { return d.name }
func (d QueryDescriptor) Target() string      { return d.target }
func (d QueryDescriptor) FixedArgs() []string { return slices.Clone(d.fixedArgs) }
func (d QueryDescriptor) Columns() []string   { return slices.Clone(d.columns) }

// HasColumn reports whether column is requested by the descriptor.
func (d QueryDescriptor) HasColumn(column string) bool {
	return slices.Contains(d.columns, column)
}

// Registry is a read-only set of query descriptors.
type Registry struct {
	descriptors map[QueryType]QueryDescriptor
}

// NewRegistry builds a registry; later descriptors replace earlier ones with the same name.
func NewRegistry(descriptors ...QueryDescriptor) *Registry {
	r := &Registry{descriptors: make(map[QueryType]QueryDescriptor, len(descriptors))}

	for _, d := range descriptors {
		r.descriptors[d.name] = d
	}

	return r
}

// DefaultRegistry returns the descriptors for the PRTG table, setobjectproperty
// and getstatus endpoints.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewQueryDescriptor(QuerySensors, "api/table.json?",
			[]string{"content=sensors", "output=json"},
			[]string{"objid", "parentid", "name", "type", "sensor", "tags"}),
		NewQueryDescriptor(QueryDevices, "api/table.json?",
			[]string{"content=devices", "output=json"},
			[]string{"objid", "name", "type", "host", "device", "tags"}),
		NewQueryDescriptor(QuerySetObjectProperty, "api/setobjectproperty.htm?", nil, nil),
		NewQueryDescriptor(QueryStatus, "api/getstatus.htm?", []string{"id=0"}, nil),
	)
}

// Lookup returns the descriptor registered under q.
func (r *Registry) Lookup(q QueryType) (QueryDescriptor, bool) {
	d, ok := r.descriptors[q]

	return d, ok
}
