package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal([]byte(WorkbookSchema), &v)
	require.NoError(t, err, "embedded schema should be valid JSON")
}

func TestValidateWorkbook_Valid(t *testing.T) {
	workbook := `{
		"tables": {
			"entries": [{"title": "Engineer", "end": "2021"}],
			"text_blocks": [],
			"contact_info": [],
			"list": [],
			"output": [],
			"side": []
		}
	}`

	assert.NoError(t, ValidateWorkbook(workbook))
}

func TestValidateWorkbook_MissingTables(t *testing.T) {
	err := ValidateWorkbook(`{"tables": {"entries": []}}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateWorkbook_NonStringCell(t *testing.T) {
	workbook := `{
		"tables": {
			"entries": [{"title": 42}],
			"text_blocks": [], "contact_info": [], "list": [], "output": [], "side": []
		}
	}`

	err := ValidateWorkbook(workbook)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateWorkbook_MalformedJSON(t *testing.T) {
	err := ValidateWorkbook(`{not json`)

	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "tables.entries", Message: "Invalid type"},
	}}

	assert.Contains(t, err.Error(), "tables.entries")
	assert.Contains(t, err.Error(), "Invalid type")
}
