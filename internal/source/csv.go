package source

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
)

// CSVSource reads workbook tables from a directory with one <table>.csv file
// per table. The first record of each file is the header.
type CSVSource struct {
	dir string
}

// NewCSVSource creates a CSV-backed source rooted at dir.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

// ReadTable reads <name>.csv from the source directory, preserving file row
// order. Short records are padded so every row exposes every column.
func (s *CSVSource) ReadTable(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{
			Location: s.dir,
			Table:    name,
			Message:  "failed to open table file",
			Cause:    err,
		}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Numbered columns vary per row in hand-edited exports.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &Error{
			Location: s.dir,
			Table:    name,
			Message:  "failed to parse CSV",
			Cause:    err,
		}
	}

	return tableFromCells(name, records), nil
}
