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
	"iter"

	"github.com/carverauto/prtgcli/pkg/logger"
)

const treeSizeKey = "treesize"

// Page is one decoded response of a listing query.
type Page struct {
	Query    QueryType
	TreeSize int
	Records  []json.RawMessage
	Body     map[string]json.RawMessage
}

// Progress is reported after every page.
type Progress struct {
	Query    QueryType
	Consumed int
	Total    int
	Pages    int
	Finished bool
}

// ProgressFunc observes pagination progress.
type ProgressFunc func(Progress)

// Paginator walks one listing query page by page. A Paginator belongs to a
// single query session: once finished it cannot be restarted.
type Paginator struct {
	gateway    Gateway
	endpoint   string
	creds      Credentials
	desc       QueryDescriptor
	limit      int
	filters    Filters
	logger     logger.Logger
	onProgress ProgressFunc

	consumed int
	total    int
	pages    int
	finished bool
}

// Next fetches the page starting at the number of records consumed so far.
// Any error ends the session.
func (p *Paginator) Next(ctx context.Context) (*Page, error) {
	if p.finished {
		return nil, ErrPaginatorExhausted
	}

	rawURL := BuildURL(PageRequest{
		Endpoint:    p.endpoint,
		Credentials: p.creds,
		Descriptor:  p.desc,
		Limit:       p.limit,
		Start:       p.consumed,
		Filters:     p.filters,
	})

	body, err := p.gateway.Get(ctx, rawURL)
	if err != nil {
		p.finished = true

		return nil, err
	}

	page, err := decodePage(p.desc.Name(), body)
	if err != nil {
		p.finished = true

		return nil, err
	}

	p.advance(len(page.Records), page.TreeSize)

	return page, nil
}

// All returns the remaining pages as a lazy sequence. Ranging over a
// paginator that has already finished yields ErrPaginatorExhausted.
func (p *Paginator) All(ctx context.Context) iter.Seq2[*Page, error] {
	return func(yield func(*Page, error) bool) {
		if p.finished {
			yield(nil, ErrPaginatorExhausted)

			return
		}

		for !p.finished {
			page, err := p.Next(ctx)
			if err != nil {
				yield(nil, err)

				return
			}

			if !yield(page, nil) {
				return
			}
		}
	}
}

// advance records a page of count items against the server's reported total.
// An empty page is terminal so a server whose treesize never converges cannot
// keep the loop alive.
func (p *Paginator) advance(count, total int) {
	p.pages++
	p.total = total

	if p.consumed+count >= total || count == 0 {
		p.finished = true
	}

	p.consumed += count

	p.logger.Info().
		Str("query", string(p.desc.Name())).
		Int("page", p.pages).
		Int("consumed", p.consumed).
		Int("total", total).
		Msgf("Processed %d/%d objects", p.consumed, total)

	if p.onProgress != nil {
		p.onProgress(Progress{
			Query:    p.desc.Name(),
			Consumed: p.consumed,
			Total:    total,
			Pages:    p.pages,
			Finished: p.finished,
		})
	}
}

func (p *Paginator) Finished() bool { return p.finished }
func (p *Paginator) Consumed() int  { return p.consumed }
func (p *Paginator) Total() int     { return p.total }
func (p *Paginator) Pages() int     { return p.pages }

func decodePage(q QueryType, body map[string]json.RawMessage) (*Page, error) {
	rawTotal, ok := body[treeSizeKey]
	if !ok {
		return nil, &MalformedResponseError{Query: q, Key: treeSizeKey}
	}

	var total json.Number
	if err := json.Unmarshal(rawTotal, &total); err != nil {
		return nil, &MalformedResponseError{Query: q, Key: treeSizeKey, Err: err}
	}

	treeSize, err := total.Int64()
	if err != nil {
		return nil, &MalformedResponseError{Query: q, Key: treeSizeKey, Err: err}
	}

	rawRecords, ok := body[string(q)]
	if !ok {
		return nil, &MalformedResponseError{Query: q, Key: string(q)}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(rawRecords, &records); err != nil {
		return nil, &MalformedResponseError{Query: q, Key: string(q), Err: err}
	}

	return &Page{
		Query:    q,
		TreeSize: int(treeSize),
		Records:  records,
		Body:     body,
	}, nil
}
