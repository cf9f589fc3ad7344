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


package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// FileConfigLoader reads a JSON object of variable names to values, such as
// {"PRTGENDPOINT": "https://prtg.example.com", "PRTG_PAGE_SIZE": 250}.
type FileConfigLoader struct{}

// Load reads path and returns its entries as strings. Numbers and booleans
// are formatted the way they would be written in the environment.
func (*FileConfigLoader) Load(_ context.Context, path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	var raw map[string]interface{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	values := make(map[string]string, len(raw))

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = v
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			values[key] = strconv.FormatBool(v)
		case nil:
		default:
			return nil, &ConfigurationError{
				Variable: key,
				Err:      fmt.Errorf("%w: %T in '%s'", errUnsupportedKind, value, path),
			}
		}
	}

	return values, nil
}
