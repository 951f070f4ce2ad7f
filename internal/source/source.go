// Package source provides data-source backends that read the CV workbook
// tables as ordered rows of string-typed named columns.
package source

import (
	"context"
	"fmt"
	"strings"
)

// Required workbook table names. Every backend must be able to serve all six.
const (
	TableEntries     = "entries"
	TableTextBlocks  = "text_blocks"
	TableContactInfo = "contact_info"
	TableList        = "list"
	TableOutput      = "output"
	TableSide        = "side"
)

// RequiredTables lists every table a workbook must provide.
var RequiredTables = []string{
	TableEntries,
	TableTextBlocks,
	TableContactInfo,
	TableList,
	TableOutput,
	TableSide,
}

// Row is a single record: column name to cell value. All cells are strings.
type Row map[string]string

// Get returns the cell value for a column, or "" when the column is absent.
func (r Row) Get(name string) string {
	return r[name]
}

// Bool interprets a cell as the in_resume inclusion flag. Only a
// case-insensitive "TRUE" counts as true.
func (r Row) Bool(name string) bool {
	return strings.EqualFold(strings.TrimSpace(r[name]), "TRUE")
}

// Table holds one workbook table with its header order preserved. Row order
// matches the source and is significant until entries are sorted.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// NumberedValues collects the non-empty values of numbered sibling columns
// (prefix_1, prefix_2, ...) from a row, in header column order. Absent or
// empty cells are skipped entirely.
func (t *Table) NumberedValues(row Row, prefix string) []string {
	var values []string
	for _, col := range t.Header {
		if !isNumberedColumn(col, prefix) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// isNumberedColumn reports whether col is prefix followed by "_" and digits.
func isNumberedColumn(col, prefix string) bool {
	rest, ok := strings.CutPrefix(col, prefix+"_")
	if !ok || rest == "" {
		return false
	}
	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Source reads workbook tables from a location identifier. A failed read or a
// missing table is fatal to model construction; per-cell anomalies are the
// caller's concern.
type Source interface {
	ReadTable(ctx context.Context, name string) (*Table, error)
}

// Error represents a failure to reach the data source or read a table.
type Error struct {
	Location string
	Table    string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("source error for %s table %q: %s: %v", e.Location, e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("source error for %s table %q: %s", e.Location, e.Table, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// tableFromCells builds a Table from a header record and cell records,
// padding short records so every row exposes every column.
func tableFromCells(name string, records [][]string) *Table {
	table := &Table{Name: name}
	if len(records) == 0 {
		return table
	}

	for _, col := range records[0] {
		table.Header = append(table.Header, strings.TrimSpace(col))
	}

	for _, record := range records[1:] {
		row := make(Row, len(table.Header))
		for i, col := range table.Header {
			if col == "" {
				continue
			}
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
