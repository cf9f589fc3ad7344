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
	"net/url"
	"strconv"
	"strings"
)

// Credentials are sent as plain query-string parameters on every request.
type Credentials struct {
	Username string
	Password string
}

// Filter is a single caller-supplied query-string pair.
type Filter struct {
	Key   string
	Value string
}

// Filters is an ordered list of query-string filters. Empty values are never stored.
type Filters []Filter

// Add appends key=value when value is non-empty.
func (f Filters) Add(key, value string) Filters {
	if value == "" {
		return f
	}

	return append(f, Filter{Key: key, Value: value})
}

// AddInt appends key=n when n is non-zero.
func (f Filters) AddInt(key string, n int) Filters {
	if n == 0 {
		return f
	}

	return append(f, Filter{Key: key, Value: strconv.Itoa(n)})
}

// PageRequest carries everything needed to address one page of a query.
type PageRequest struct {
	Endpoint    string
	Credentials Credentials
	Descriptor  QueryDescriptor
	Limit       int
	Start       int
	Filters     Filters
}

// BuildURL assembles the request URL in a fixed order: credentials, paging,
// the descriptor's fixed arguments, columns, then filters.
func BuildURL(req PageRequest) string {
	var b strings.Builder

	b.WriteString(strings.TrimRight(req.Endpoint, "/"))
	b.WriteByte('/')
	b.WriteString(req.Descriptor.Target())

	b.WriteString("username=")
	b.WriteString(url.QueryEscape(req.Credentials.Username))
	b.WriteString("&password=")
	b.WriteString(url.QueryEscape(req.Credentials.Password))

	b.WriteString("&count=")
	b.WriteString(strconv.Itoa(req.Limit))
	b.WriteString("&start=")
	b.WriteString(strconv.Itoa(req.Start))

	if args := req.Descriptor.FixedArgs(); len(args) > 0 {
		b.WriteByte('&')
		b.WriteString(strings.Join(args, "&"))
	}

	if columns := req.Descriptor.Columns(); len(columns) > 0 {
		b.WriteString("&columns=")
		b.WriteString(strings.Join(columns, ","))
	}

	for _, f := range req.Filters {
		if f.Value == "" {
			continue
		}

		b.WriteByte('&')
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
	}

	return b.String()
}

// RedactURL masks the password parameter so a URL can be logged.
func RedactURL(rawURL string) string {
	base, query, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	params := strings.Split(query, "&")
	for i, p := range params {
		if strings.HasPrefix(p, "password=") {
			params[i] = "password=***"
		}
	}

	return base + "?" + strings.Join(params, "&")
}
