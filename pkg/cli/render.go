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
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/carverauto/prtgcli/pkg/prtg"
)

func asRecords[T prtg.Record](in []T) []prtg.Record {
	out := make([]prtg.Record, len(in))
	for i, r := range in {
		out[i] = r
	}

	return out
}

// sortRecords orders records by column, comparing numerically when both
// values are integers.
func sortRecords(records []prtg.Record, column string) error {
	if len(records) == 0 || column == "" {
		return nil
	}

	if _, ok := records[0].Fields()[column]; !ok {
		return fmt.Errorf("%w: %q (have %s)", errInvalidSortColumn, column,
			strings.Join(slices.Sorted(maps.Keys(records[0].Fields())), ", "))
	}

	slices.SortStableFunc(records, func(a, b prtg.Record) int {
		return compareValues(a.Fields()[column], b.Fields()[column])
	})

	return nil
}

func compareValues(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)

	if aErr == nil && bErr == nil {
		return cmp.Compare(ai, bi)
	}

	return strings.Compare(a, b)
}

// RenderResults writes one "<type>(<index>): <name>, <tags>" line per record.
func RenderResults(w io.Writer, records []prtg.Record) error {
	for i, r := range records {
		if _, err := fmt.Fprintln(w, r.Summary(i)); err != nil {
			return err
		}
	}

	return nil
}

// RenderTable writes records as a table whose columns are sorted by name.
func RenderTable(w io.Writer, records []prtg.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, newStyles().warning.Render("no objects matched"))

		return err
	}

	columns := slices.Sorted(maps.Keys(records[0].Fields()))
	rows := make([][]string, 0, len(records))

	for _, r := range records {
		fields := r.Fields()
		row := make([]string, len(columns))

		for i, col := range columns {
			row[i] = fields[col]
		}

		rows = append(rows, row)
	}

	return writeTable(w, columns, rows)
}

// RenderStatus writes the server status as a key/value table.
func RenderStatus(w io.Writer, status prtg.Status) error {
	keys := slices.Sorted(maps.Keys(status))
	rows := make([][]string, 0, len(keys))

	for _, k := range keys {
		rows = append(rows, []string{k, status[k]})
	}

	return writeTable(w, []string{"key", "value"}, rows)
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	s := newStyles()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case row%2 == 0:
				return s.altCell
			default:
				return s.cell
			}
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// PrintError writes err in the error style.
func PrintError(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, newStyles().error.Render("Error: "+err.Error()))
}
