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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// nameColumn is the one column allowed to be absent from a record; it defaults to "".
const nameColumn = "name"

// Record is implemented by every materialized PRTG object.
type Record interface {
	// Kind is the query the record was materialized from.
	Kind() QueryType
	// Fields returns the record's columns rendered as strings, keyed by column name.
	Fields() map[string]string
	// Summary renders the record as a result line: "<type>(<index>): <name>, <tags>".
	Summary(index int) string
}

func summary(typ string, index int, name, tags string) string {
	return fmt.Sprintf("%s(%d): %s, %s", typ, index, name, tags)
}

// Sensor is a materialized row of the sensors query.
type Sensor struct {
	ObjID    int    `json:"objid"`
	ParentID int    `json:"parentid"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Sensor   string `json:"sensor"`
	Tags     string `json:"tags"`
}

func (Sensor) Kind() QueryType { return QuerySensors }

func (s Sensor) Summary(index int) string { return summary(s.Type, index, s.Name, s.Tags) }

// Fields implements Record.
func (s Sensor) Fields() map[string]string {
	return map[string]string{
		"objid":    strconv.Itoa(s.ObjID),
		"parentid": strconv.Itoa(s.ParentID),
		"name":     s.Name,
		"type":     s.Type,
		"sensor":   s.Sensor,
		"tags":     s.Tags,
	}
}

// Device is a materialized row of the devices query.
type Device struct {
	ObjID  int    `json:"objid"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Host   string `json:"host"`
	Device string `json:"device"`
	Tags   string `json:"tags"`
}

func (Device) Kind() QueryType { return QueryDevices }

func (d Device) Summary(index int) string { return summary(d.Type, index, d.Name, d.Tags) }

// Fields implements Record.
func (d Device) Fields() map[string]string {
	return map[string]string{
		"objid":  strconv.Itoa(d.ObjID),
		"name":   d.Name,
		"type":   d.Type,
		"host":   d.Host,
		"device": d.Device,
		"tags":   d.Tags,
	}
}

// MaterializeSensors converts raw sensor rows into Sensors.
func MaterializeSensors(desc QueryDescriptor, raw []json.RawMessage) ([]Sensor, error) {
	return materialize(desc, raw, func(r *rawRecord) (Sensor, error) {
		var s Sensor

		var err error

		if s.ObjID, err = r.number("objid"); err != nil {
			return s, err
		}

		if s.ParentID, err = r.number("parentid"); err != nil {
			return s, err
		}

		s.Name = r.text("name")
		s.Type = r.text("type")
		s.Sensor = r.text("sensor")
		s.Tags = r.text("tags")

		return s, nil
	})
}

// MaterializeDevices converts raw device rows into Devices.
func MaterializeDevices(desc QueryDescriptor, raw []json.RawMessage) ([]Device, error) {
	return materialize(desc, raw, func(r *rawRecord) (Device, error) {
		var d Device

		var err error

		if d.ObjID, err = r.number("objid"); err != nil {
			return d, err
		}

		d.Name = r.text("name")
		d.Type = r.text("type")
		d.Host = r.text("host")
		d.Device = r.text("device")
		d.Tags = r.text("tags")

		return d, nil
	})
}

func materialize[T any](desc QueryDescriptor, raw []json.RawMessage, build func(*rawRecord) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	columns := desc.Columns()

	for i, item := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", desc.Name(), i, err)
		}

		for _, column := range columns {
			if _, ok := fields[column]; !ok && column != nameColumn {
				return nil, &MissingFieldError{Query: desc.Name(), Index: i, Field: column}
			}
		}

		record, err := build(&rawRecord{fields: fields})
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", desc.Name(), i, err)
		}

		out = append(out, record)
	}

	return out, nil
}

// rawRecord reads loosely typed PRTG values by column name.
type rawRecord struct {
	fields map[string]json.RawMessage
}

// text returns the column as text. Absent and null values read as "".
func (r *rawRecord) text(column string) string {
	value, ok := r.fields[column]
	if !ok || isNull(value) {
		return ""
	}

	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	return strings.TrimSpace(string(value))
}

// number accepts JSON numbers and numeric strings. Absent values read as 0.
func (r *rawRecord) number(column string) (int, error) {
	value, ok := r.fields[column]
	if !ok || isNull(value) {
		return 0, nil
	}

	var n json.Number
	if err := json.Unmarshal(value, &n); err != nil {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return 0, fmt.Errorf("column %q: %w", column, err)
		}

		n = json.Number(strings.TrimSpace(s))
	}

	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}

	return i, nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
