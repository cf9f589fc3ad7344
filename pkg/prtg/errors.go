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
	"errors"
	"fmt"
)

var (
	// ErrPaginatorExhausted is returned by Next once the query session has finished.
	ErrPaginatorExhausted = errors.New("paginator exhausted")
	// ErrUnknownQuery is returned for a query type missing from the registry.
	ErrUnknownQuery = errors.New("unknown query type")

	errUnexpectedStatusCode = errors.New("unexpected status code")
)

// QueryFailure is returned when a request to the PRTG API does not succeed.
// StatusCode is zero unless the server answered with a non-success status;
// transport, timeout and decode failures carry Err instead.
type QueryFailure struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *QueryFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %v: %d, response: %s",
			e.Method, e.URL, errUnexpectedStatusCode, e.StatusCode, string(e.Body))
	}

	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *QueryFailure) Unwrap() error {
	if e.StatusCode != 0 {
		return errUnexpectedStatusCode
	}

	return e.Err
}

// DeviceNotFoundError is returned when a filtered device lookup matches nothing.
type DeviceNotFoundError struct {
	ObjID int
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("no device with objid: %d was found", e.ObjID)
}

// AmbiguousDeviceError is returned when a lookup by objid matches more than one device.
type AmbiguousDeviceError struct {
	ObjID   int
	Matches int
}

func (e *AmbiguousDeviceError) Error() string {
	return fmt.Sprintf("lookup of objid %d matched %d devices", e.ObjID, e.Matches)
}

// MissingFieldError is returned when a record lacks one of the requested columns.
type MissingFieldError struct {
	Query QueryType
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record %d is missing field %q", e.Query, e.Index, e.Field)
}

// MalformedResponseError is returned when a page body lacks treesize or its record list.
type MalformedResponseError struct {
	Query QueryType
	Key   string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s response: key %q: %v", e.Query, e.Key, e.Err)
	}

	return fmt.Sprintf("malformed %s response: missing key %q", e.Query, e.Key)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
