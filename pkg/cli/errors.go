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

import "errors"

var (
	errMissingCommand     = errors.New("no command given")
	errUnknownCommand     = errors.New("unknown command")
	errInvalidContent     = errors.New("content must be sensors or devices")
	errInvalidFilter      = errors.New("filter must be key=value pairs separated by commas")
	errInvalidSortColumn  = errors.New("unknown sort column")
	errParentsNeedSensors = errors.New("-p requires -c sensors")
	errMissingNewTags     = errors.New("new tags are required")
	errMissingSelection   = errors.New("a --tags or --objid selection is required")
	errNoTaggerAction     = errors.New("one of --sensor, --device or --tag-sensor-parents is required")
)
