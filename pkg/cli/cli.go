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

// Package cli implements the prtgcli and prtg-tagger command lines.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/prtgcli/pkg/prtg"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

const (
	cellPadding    = 1
	defaultSortBy  = "objid"
	defaultContent = string(prtg.QueryDevices)
)

func newStyles() styles {
	return styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true).
			Padding(0, cellPadding),
		cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Padding(0, cellPadding),
		altCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)).
			Padding(0, cellPadding),
		border: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPurple)),
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)).
			Bold(true),
		review: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)).
			Bold(true),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
	}
}

// SubcommandHandler defines the interface for parsing subcommand flags.
type SubcommandHandler interface {
	Parse(args []string, cfg *CmdConfig) error
}

// stringFlag registers one string flag under a short and a long name.
func stringFlag(fs *flag.FlagSet, p *string, short, long, value, usage string) {
	fs.StringVar(p, short, value, usage)
	fs.StringVar(p, long, value, usage)
}

func boolFlag(fs *flag.FlagSet, p *bool, short, long string, usage string) {
	fs.BoolVar(p, short, false, usage)
	fs.BoolVar(p, long, false, usage)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func validateContent(content string) error {
	if content == string(prtg.QuerySensors) || content == string(prtg.QueryDevices) {
		return nil
	}

	return fmt.Errorf("%w: %q", errInvalidContent, content)
}

// ListHandler handles flags for the ls subcommand.
type ListHandler struct{}

// Parse processes the command-line arguments for the ls subcommand.
func (ListHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := newFlagSet("ls")
	stringFlag(fs, &cfg.Content, "c", "content", defaultContent, "object type: sensors or devices")
	stringFlag(fs, &cfg.Filter, "f", "filter-string", "", "object filter, e.g. tags=switch,status=up")
	stringFlag(fs, &cfg.SortBy, "s", "sort-by", defaultSortBy, "sort by a column")
	boolFlag(fs, &cfg.Parents, "p", "parents", "list the parent devices of the matching sensors")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing ls flags: %w", err)
	}

	if err := validateContent(cfg.Content); err != nil {
		return err
	}

	if cfg.Parents && cfg.Content != string(prtg.QuerySensors) {
		return errParentsNeedSensors
	}

	return nil
}

// TableHandler handles flags for the table subcommand.
type TableHandler struct{}

// Parse processes the command-line arguments for the table subcommand.
func (TableHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := newFlagSet("table")
	stringFlag(fs, &cfg.Content, "c", "content", defaultContent, "object type: sensors or devices")
	stringFlag(fs, &cfg.Filter, "f", "filter-string", "", "object filter, e.g. tags=switch,status=up")
	stringFlag(fs, &cfg.SortBy, "s", "sort-by", defaultSortBy, "sort by a column")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing table flags: %w", err)
	}

	return validateContent(cfg.Content)
}

// StatusHandler handles the flagless status subcommand.
type StatusHandler struct{}

// Parse processes the command-line arguments for the status subcommand.
func (StatusHandler) Parse(args []string, _ *CmdConfig) error {
	if err := newFlagSet("status").Parse(args); err != nil {
		return fmt.Errorf("parsing status flags: %w", err)
	}

	return nil
}

// TagHandler handles flags for the tag subcommand.
type TagHandler struct{}

// Parse processes the command-line arguments for the tag subcommand.
func (TagHandler) Parse(args []string, cfg *CmdConfig) error {
	fs := newFlagSet("tag")
	fs.StringVar(&cfg.Tags, "tags", "", "select sensors by tag")
	fs.IntVar(&cfg.ObjID, "objid", 0, "select sensors by objid")
	stringFlag(fs, &cfg.NewTags, "n", "new-tags", "", "space separated tags to set on each parent device")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing tag flags: %w", err)
	}

	return validateTagging(cfg)
}

func validateTagging(cfg *CmdConfig) error {
	if cfg.Tags == "" && cfg.ObjID == 0 {
		return errMissingSelection
	}

	if cfg.NewTags == "" {
		return errMissingNewTags
	}

	return nil
}

// ParseFlags parses the prtgcli global flags and subcommand.
func ParseFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	fs := newFlagSet("prtgcli")
	stringFlag(fs, &cfg.Level, "l", "level", "", "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.Help, "help", false, "show help message")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	if cfg.Help || cfg.Version {
		return cfg, nil
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return cfg, errMissingCommand
	}

	cfg.SubCmd = rest[0]
	cfg.Args = rest[1:]

	subcommands := map[string]SubcommandHandler{
		"ls":     ListHandler{},
		"table":  TableHandler{},
		"status": StatusHandler{},
		"tag":    TagHandler{},
	}

	handler, exists := subcommands[cfg.SubCmd]
	if !exists {
		return cfg, fmt.Errorf("%w: %q", errUnknownCommand, cfg.SubCmd)
	}

	if err := handler.Parse(cfg.Args, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseTaggerFlags parses the prtg-tagger command line.
func ParseTaggerFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	fs := newFlagSet("prtg-tagger")
	fs.StringVar(&cfg.Endpoint, "endpoint", "", "PRTG API endpoint (overrides PRTGENDPOINT)")
	fs.StringVar(&cfg.Username, "username", "", "PRTG username (overrides PRTGUSERNAME)")
	fs.StringVar(&cfg.Password, "password", "", "PRTG password (overrides PRTGPASSWORD)")
	fs.BoolVar(&cfg.Sensor, "sensor", false, "search for sensor objects")
	fs.BoolVar(&cfg.Device, "device", false, "search for device objects")
	fs.StringVar(&cfg.Tags, "tags", "", "search by a tag string")
	fs.IntVar(&cfg.ObjID, "objid", 0, "search by an objid")
	fs.StringVar(&cfg.NewTags, "new_tags", "", "space separated tags to set on each parent device")
	fs.BoolVar(&cfg.TagSensorParents, "tag-sensor-parents", false,
		"look up sensors by tag or objid, then tag all their parents with --new_tags")
	stringFlag(fs, &cfg.Level, "l", "level", "", "log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.Help, "help", false, "show help message")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	cfg.Args = fs.Args()

	switch {
	case cfg.Help || cfg.Version:
		return cfg, nil
	case cfg.TagSensorParents:
		return cfg, validateTagging(cfg)
	case cfg.Sensor || cfg.Device:
		return cfg, nil
	default:
		return cfg, errNoTaggerAction
	}
}
