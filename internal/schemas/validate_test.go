package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "score"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "score": {"type": "integer", "minimum": 0, "maximum": 100}
  }
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"title": "Batch", "score": 85}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"title": "", "score": 130}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, validationErr.Error(), "score")
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"title": "Batch"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nonsense"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"title": "Batch", "score": 10}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))

	require.NoError(t, os.WriteFile(docPath, []byte(`{"score": -1}`), 0o644))
	err := ValidateJSON(schemaPath, docPath)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	assert.Error(t, err)

	err = ValidateJSON(filepath.Join(dir, "absent.schema.json"), schemaPath)
	assert.Error(t, err)
}

func TestResolveSchemaPath(t *testing.T) {
	// The analysis schema lives at the repo root and this test runs two
	// levels down.
	path := ResolveSchemaPath(filepath.Join("schemas", "analysis.schema.json"))
	require.NotEmpty(t, path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
