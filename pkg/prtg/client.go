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

// Package prtg is a client for the PRTG HTTP management API: it builds query
// URLs, paginates table queries, materializes sensors and devices, and issues
// object property updates.
package prtg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/carverauto/prtgcli/pkg/logger"
)

// DefaultPageSize is the number of records requested per page.
const DefaultPageSize = 500

var errEmptyPropertyValue = errors.New("property value must not be empty")

// Client issues PRTG queries through a Gateway.
type Client struct {
	endpoint   string
	creds      Credentials
	gateway    Gateway
	registry   *Registry
	pageSize   int
	logger     logger.Logger
	onProgress ProgressFunc
}

// Option configures a Client.
type Option func(*Client)

// WithGateway replaces the default HTTPGateway.
func WithGateway(g Gateway) Option {
	return func(c *Client) { c.gateway = g }
}

// WithRegistry replaces DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(c *Client) { c.registry = r }
}

// WithPageSize sets the page size; non-positive values keep the default.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProgress registers a callback invoked after every page.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Client) { c.onProgress = fn }
}

// NewClient creates a Client for endpoint.
func NewClient(endpoint string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		creds:    creds,
		pageSize: DefaultPageSize,
		logger:   logger.NewTestLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.WithComponent("prtg")

	if c.registry == nil {
		c.registry = DefaultRegistry()
	}

	if c.gateway == nil {
		c.gateway = NewHTTPGateway(GatewayOptions{Logger: c.logger})
	}

	return c
}

func (c *Client) descriptor(q QueryType) (QueryDescriptor, error) {
	desc, ok := c.registry.Lookup(q)
	if !ok {
		return QueryDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownQuery, q)
	}

	return desc, nil
}

// Paginate starts a new query session for q.
func (c *Client) Paginate(q QueryType, filters Filters) (*Paginator, error) {
	desc, err := c.descriptor(q)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("query", string(q)).
		Int("filters", len(filters)).
		Int("page_size", c.pageSize).
		Msg("Starting query")

	return &Paginator{
		gateway:    c.gateway,
		endpoint:   c.endpoint,
		creds:      c.creds,
		desc:       desc,
		limit:      c.pageSize,
		filters:    filters,
		logger:     c.logger,
		onProgress: c.onProgress,
	}, nil
}

// Sensors returns every sensor matching filters.
func (c *Client) Sensors(ctx context.Context, filters Filters) ([]Sensor, error) {
	return collect(ctx, c, QuerySensors, filters, MaterializeSensors)
}

// Devices returns every device matching filters.
func (c *Client) Devices(ctx context.Context, filters Filters) ([]Device, error) {
	return collect(ctx, c, QueryDevices, filters, MaterializeDevices)
}

func collect[T any](
	ctx context.Context, c *Client, q QueryType, filters Filters,
	materialize func(QueryDescriptor, []json.RawMessage) ([]T, error)) ([]T, error) {
	p, err := c.Paginate(q, filters)
	if err != nil {
		return nil, err
	}

	var out []T

	for page, err := range p.All(ctx) {
		if err != nil {
			return nil, err
		}

		records, err := materialize(p.desc, page.Records)
		if err != nil {
			return nil, err
		}

		out = append(out, records...)
	}

	return out, nil
}

// LookupDevice resolves a single device by objid. The filter_objid filter is
// always sent, zero included. It fails with *DeviceNotFoundError when no
// returned device carries objid and *AmbiguousDeviceError when
// the filter matches more than one device.
func (c *Client) LookupDevice(ctx context.Context, objid int) (*Device, error) {
	desc, err := c.descriptor(QueryDevices)
	if err != nil {
		return nil, err
	}

	rawURL := BuildURL(PageRequest{
		Endpoint:    c.endpoint,
		Credentials: c.creds,
		Descriptor:  desc,
		Limit:       c.pageSize,
		Filters:     Filters{}.Add("filter_objid", strconv.Itoa(objid)),
	})

	body, err := c.gateway.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	page, err := decodePage(desc.Name(), body)
	if err != nil {
		return nil, err
	}

	devices, err := MaterializeDevices(desc, page.Records)
	if err != nil {
		return nil, err
	}

	// Rows for other objects mean the server ignored the filter.
	matches := slices.DeleteFunc(devices, func(d Device) bool { return d.ObjID != objid })

	switch len(matches) {
	case 0:
		return nil, &DeviceNotFoundError{ObjID: objid}
	case 1:
		return &matches[0], nil
	default:
		return nil, &AmbiguousDeviceError{ObjID: objid, Matches: len(matches)}
	}
}

// SetObjectProperty sets property name to value on object id.
func (c *Client) SetObjectProperty(ctx context.Context, id int, name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s on object %d", errEmptyPropertyValue, name, id)
	}

	desc, err := c.descriptor(QuerySetObjectProperty)
	if err != nil {
		return err
	}

	rawURL := BuildURL(PageRequest{
		Endpoint:    c.endpoint,
		Credentials: c.creds,
		Descriptor:  desc,
		Limit:       c.pageSize,
		Filters: Filters{}.
			Add("name", name).
			Add("value", value).
			Add("id", strconv.Itoa(id)),
	})

	c.logger.Info().
		Int("objid", id).
		Str("property", name).
		Str("value", value).
		Msg("Updating object property")

	return c.gateway.Post(ctx, rawURL)
}

// Status is the flattened getstatus response.
type Status map[string]string

// Status fetches the server status summary.
func (c *Client) Status(ctx context.Context) (Status, error) {
	desc, err := c.descriptor(QueryStatus)
	if err != nil {
		return nil, err
	}

	rawURL := BuildURL(PageRequest{
		Endpoint:    c.endpoint,
		Credentials: c.creds,
		Descriptor:  desc,
		Limit:       c.pageSize,
	})

	body, err := c.gateway.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	r := &rawRecord{fields: body}
	status := make(Status, len(body))

	for key := range body {
		status[key] = r.text(key)
	}

	return status, nil
}
