// Package output provides utilities for formatting command output.
package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
type Column struct {
	Header string
	Width  int
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// The table is initialized with an empty column list and a default
// separator of two spaces.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// AddColumn appends a column whose initial width is the header width.
//
// Parameters:
//   - header: The column header text
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  runewidth.StringWidth(header),
	})
	return t
}

// UpdateWidths grows column widths to fit the given row values.
//
// Values beyond the configured column count are ignored.
//
// Parameters:
//   - values: One value per column, in column order
func (t *Table) UpdateWidths(values ...string) {
	for i, value := range values {
		if i >= len(t.columns) {
			break
		}
		if w := runewidth.StringWidth(value); w > t.columns[i].Width {
			t.columns[i].Width = w
		}
	}
}

// HeaderRow returns the formatted header row.
//
// Returns:
//   - string: Headers padded to column widths, joined by the separator
func (t *Table) HeaderRow() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	return t.FormatRow(headers...)
}

// SeparatorRow returns a row of dashes matching the column widths.
//
// Returns:
//   - string: Dash runs per column, joined by the separator
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats one row of values padded to the column widths.
//
// The last column is not padded so rows do not carry trailing spaces.
//
// Parameters:
//   - values: One value per column, in column order
//
// Returns:
//   - string: The formatted row
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if i == len(t.columns)-1 {
			parts = append(parts, value)
			continue
		}
		padding := col.Width - runewidth.StringWidth(value)
		if padding < 0 {
			padding = 0
		}
		parts = append(parts, value+strings.Repeat(" ", padding))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}
