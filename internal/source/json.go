package source

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cv-renderer/internal/schemas"
)

// workbookFile mirrors the JSON workbook format: every table as an array of
// string-valued rows.
type workbookFile struct {
	Tables map[string][]map[string]string `json:"tables"`
}

// JSONSource reads workbook tables from a single JSON file validated against
// the workbook schema at construction.
type JSONSource struct {
	path   string
	tables map[string][]map[string]string
}

// NewJSONSource loads and validates a JSON workbook file.
func NewJSONSource(path string) (*JSONSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Location: path,
			Message:  "failed to read workbook file",
			Cause:    err,
		}
	}

	if err := schemas.ValidateWorkbook(string(data)); err != nil {
		return nil, &Error{
			Location: path,
			Message:  "workbook failed schema validation",
			Cause:    err,
		}
	}

	var wb workbookFile
	if err := json.Unmarshal(data, &wb); err != nil {
		return nil, &Error{
			Location: path,
			Message:  "failed to parse workbook JSON",
			Cause:    err,
		}
	}

	return &JSONSource{path: path, tables: wb.Tables}, nil
}

// ReadTable returns one table from the workbook, preserving array row order.
// JSON objects carry no column order, so the header is reconstructed with
// numbered siblings in numeric order.
func (s *JSONSource) ReadTable(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, ok := s.tables[name]
	if !ok {
		return nil, &Error{
			Location: s.path,
			Table:    name,
			Message:  "table not found in workbook",
		}
	}

	table := &Table{Name: name, Header: headerFromRows(rows)}
	for _, raw := range rows {
		row := make(Row, len(raw))
		for k, v := range raw {
			row[k] = v
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// headerFromRows builds a deterministic header from the union of row keys,
// ordering numbered columns by their numeric suffix (description_2 before
// description_10).
func headerFromRows(rows []map[string]string) []string {
	seen := make(map[string]bool)
	var header []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	sort.Slice(header, func(i, j int) bool {
		bi, ni := splitNumberedName(header[i])
		bj, nj := splitNumberedName(header[j])
		if bi != bj {
			return bi < bj
		}
		return ni < nj
	})
	return header
}

// splitNumberedName splits "description_2" into ("description", 2); names
// without a numeric suffix keep ordinal 0.
func splitNumberedName(name string) (string, int) {
	idx := strings.LastIndex(name, "_")
	if idx < 0 {
		return name, 0
	}
	n, err := strconv.Atoi(name[idx+1:])
	if err != nil {
		return name, 0
	}
	return name[:idx], n
}
