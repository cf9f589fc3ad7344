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

import "github.com/charmbracelet/lipgloss"

// CmdConfig holds parsed command-line configuration.
type CmdConfig struct {
	Help    bool
	Version bool
	SubCmd  string
	Level   string

	// ls and table
	Content string
	Filter  string
	SortBy  string
	Parents bool

	// tag and prtg-tagger selection
	Tags    string
	ObjID   int
	NewTags string

	// prtg-tagger only
	Endpoint         string
	Username         string
	Password         string
	Sensor           bool
	Device           bool
	TagSensorParents bool

	Args []string
}

// styles are the lipgloss styles used for terminal output.
type styles struct {
	header, cell, altCell, border, prompt, review, success, warning, error lipgloss.Style
}
