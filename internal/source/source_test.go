package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberedValues(t *testing.T) {
	table := &Table{
		Header: []string{"title", "description_1", "description_2", "description_10", "extra_1", "description"},
	}

	tests := []struct {
		name     string
		row      Row
		prefix   string
		expected []string
	}{
		{
			name:     "Header order preserved",
			row:      Row{"description_1": "a", "description_2": "b", "description_10": "c"},
			prefix:   "description",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Empty cells skipped",
			row:      Row{"description_1": "a", "description_2": "", "description_10": "  "},
			prefix:   "description",
			expected: []string{"a"},
		},
		{
			name:     "No values yields nil",
			row:      Row{"title": "x"},
			prefix:   "description",
			expected: nil,
		},
		{
			name:     "Prefix without suffix is not numbered",
			row:      Row{"description": "bare"},
			prefix:   "description",
			expected: nil,
		},
		{
			name:     "Other prefixes untouched",
			row:      Row{"extra_1": "e", "description_1": "d"},
			prefix:   "extra",
			expected: []string{"e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.NumberedValues(tt.row, tt.prefix))
		})
	}
}

func TestIsNumberedColumn(t *testing.T) {
	tests := []struct {
		name     string
		col      string
		prefix   string
		expected bool
	}{
		{"Simple numbered", "description_1", "description", true},
		{"Multi digit", "description_12", "description", true},
		{"Bare prefix", "description", "description", false},
		{"Trailing underscore only", "description_", "description", false},
		{"Non-numeric suffix", "description_a", "description", false},
		{"Wrong prefix", "extra_1", "description", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isNumberedColumn(tt.col, tt.prefix))
		})
	}
}

func TestRowBool(t *testing.T) {
	assert.True(t, Row{"in_resume": "TRUE"}.Bool("in_resume"))
	assert.True(t, Row{"in_resume": "true"}.Bool("in_resume"))
	assert.True(t, Row{"in_resume": " TRUE "}.Bool("in_resume"))
	assert.False(t, Row{"in_resume": "FALSE"}.Bool("in_resume"))
	assert.False(t, Row{}.Bool("in_resume"))
}

func TestTableFromCells(t *testing.T) {
	table := tableFromCells("entries", [][]string{
		{"title", "loc", "description_1"},
		{"Engineer", "Berlin", "Built X"},
		{"Short row"},
	})

	assert.Equal(t, []string{"title", "loc", "description_1"}, table.Header)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "Engineer", table.Rows[0].Get("title"))
	assert.Equal(t, "Built X", table.Rows[0].Get("description_1"))

	assert.Equal(t, "Short row", table.Rows[1].Get("title"), "short records pad missing cells")
	assert.Equal(t, "", table.Rows[1].Get("loc"))
	assert.Equal(t, "", table.Rows[1].Get("description_1"))
}

func TestTableFromCells_Empty(t *testing.T) {
	table := tableFromCells("entries", nil)

	assert.Empty(t, table.Header)
	assert.Empty(t, table.Rows)
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Location: "dir", Table: "entries", Message: "boom"}
	assert.Contains(t, err.Error(), `table "entries"`)

	cause := assert.AnError
	wrapped := &Error{Location: "dir", Table: "entries", Message: "boom", Cause: cause}
	assert.ErrorIs(t, wrapped, cause)
}
