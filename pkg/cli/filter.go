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
	"fmt"
	"strings"

	"github.com/carverauto/prtgcli/pkg/prtg"
)

const filterPrefix = "filter_"

// ParseFilterString turns "key=value,key2=value2" into filter_key=value
// query filters. Keys that already carry the filter_ prefix are kept as is.
// A comma starts a new pair only when the text after it contains "=", so
// "tags=a,b,status=up" sets tags to "a,b".
func ParseFilterString(s string) (prtg.Filters, error) {
	var filters prtg.Filters

	if strings.TrimSpace(s) == "" {
		return filters, nil
	}

	var pairs []string

	for _, segment := range strings.Split(s, ",") {
		switch {
		case strings.Contains(segment, "="):
			pairs = append(pairs, segment)
		case strings.TrimSpace(segment) == "" || len(pairs) == 0:
			return nil, fmt.Errorf("%w: %q", errInvalidFilter, segment)
		default:
			pairs[len(pairs)-1] += "," + segment
		}
	}

	for _, pair := range pairs {
		key, value, _ := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidFilter, pair)
		}

		if !strings.HasPrefix(key, filterPrefix) {
			key = filterPrefix + key
		}

		filters = filters.Add(key, strings.TrimSpace(value))
	}

	return filters, nil
}

// selectionFilters builds the tags/objid selection used by tag and prtg-tagger.
func selectionFilters(tags string, objid int) prtg.Filters {
	return prtg.Filters{}.
		Add("filter_tags", tags).
		AddInt("filter_objid", objid)
}
