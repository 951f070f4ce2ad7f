package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-renderer/internal/schemas"
)

const validWorkbook = `{
  "tables": {
    "entries": [
      {"title": "Engineer", "end": "2021", "section": "work", "in_resume": "TRUE",
       "description_2": "Second", "description_10": "Tenth", "description_1": "First"}
    ],
    "text_blocks": [],
    "contact_info": [],
    "list": [],
    "output": [],
    "side": []
  }
}`

func writeWorkbook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workbook.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONSource_ReadTable(t *testing.T) {
	src, err := NewJSONSource(writeWorkbook(t, validWorkbook))
	require.NoError(t, err)

	table, err := src.ReadTable(context.Background(), "entries")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Engineer", table.Rows[0].Get("title"))
}

func TestJSONSource_NumberedColumnsSortNumerically(t *testing.T) {
	src, err := NewJSONSource(writeWorkbook(t, validWorkbook))
	require.NoError(t, err)

	table, err := src.ReadTable(context.Background(), "entries")
	require.NoError(t, err)

	values := table.NumberedValues(table.Rows[0], "description")
	assert.Equal(t, []string{"First", "Second", "Tenth"}, values,
		"description_10 should follow description_2, not precede it")
}

func TestJSONSource_MissingTable(t *testing.T) {
	src, err := NewJSONSource(writeWorkbook(t, validWorkbook))
	require.NoError(t, err)

	_, err = src.ReadTable(context.Background(), "no_such_table")
	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
}

func TestJSONSource_SchemaViolation(t *testing.T) {
	// entries must be an array of string-valued objects.
	invalid := `{"tables": {"entries": [{"title": 42}], "text_blocks": [], "contact_info": [], "list": [], "output": [], "side": []}}`

	_, err := NewJSONSource(writeWorkbook(t, invalid))

	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestJSONSource_MissingRequiredTable(t *testing.T) {
	invalid := `{"tables": {"entries": []}}`

	_, err := NewJSONSource(writeWorkbook(t, invalid))
	require.Error(t, err)
}

func TestJSONSource_FileNotFound(t *testing.T) {
	_, err := NewJSONSource(filepath.Join(t.TempDir(), "missing.json"))

	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
}

func TestSplitNumberedName(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedBase string
		expectedN    int
	}{
		{"Numbered", "description_2", "description", 2},
		{"Double digit", "description_10", "description", 10},
		{"Plain name", "title", "title", 0},
		{"Underscore no digits", "in_resume", "in_resume", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, n := splitNumberedName(tt.input)
			assert.Equal(t, tt.expectedBase, base)
			assert.Equal(t, tt.expectedN, n)
		})
	}
}
