package validation

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadSchemaFile reads a JSON Schema document from disk.
func LoadSchemaFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("validation: read schema %s: %w", path, err)
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("validation: decode schema %s: %w", path, err)
	}
	return schema, nil
}

// NewMetadataValidatorFromFile compiles a validator from a schema file. An
// empty path yields the built-in metadata schema.
func NewMetadataValidatorFromFile(path string) (*MetadataValidator, error) {
	if path == "" {
		return NewMetadataValidator(nil)
	}
	schema, err := LoadSchemaFile(path)
	if err != nil {
		return nil, err
	}
	return NewMetadataValidator(schema)
}
