package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

const moveListSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"attack_type": {"type": "string", "enum": ["fire", "water", "psyche", "normal", "darkness"]},
			"damage": {"type": "integer", "minimum": 0}
		},
		"required": ["name", "attack_type"]
	}
}`

func testSchemas() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": {Data: []byte(personSchema)},
		"moves.schema.json":  {Data: []byte(moveListSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
		"object.schema.json": {Data: []byte(`{"$schema": "http://json-schema.org/draft-07/schema#", "type": "object"}`)},
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Mew"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "age"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "test_data.json")
			if err := os.WriteFile(dataPath, []byte(tt.data), 0644); err != nil {
				t.Fatalf("Failed to write data file: %v", err)
			}

			err := validator.ValidateFile(dataPath, "person.schema.json")

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())

	tests := []struct {
		name      string
		data      []byte
		wantError bool
	}{
		{name: "valid array", data: []byte(`[{"name": "Ember", "attack_type": "fire", "damage": 10}]`)},
		{name: "empty array", data: []byte(`[]`)},
		{name: "attack type outside enum", data: []byte(`[{"name": "Ember", "attack_type": "grass"}]`), wantError: true},
		{name: "missing required field", data: []byte(`[{"name": "Ember"}]`), wantError: true},
		{name: "negative damage", data: []byte(`[{"name": "Ember", "attack_type": "fire", "damage": -1}]`), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes(tt.data, "moves.schema.json")

			if tt.wantError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ReportsInstanceLocation(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())

	err := validator.ValidateBytes([]byte(`[{"name": "Ember", "attack_type": "fire"}, {"name": "Bite", "attack_type": "dark"}]`), "moves.schema.json")
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if !strings.Contains(err.Error(), "/1/attack_type") {
		t.Errorf("Expected error to point at /1/attack_type, got: %v", err)
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())

	err := validator.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for non-existent schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_BrokenSchema(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())

	err := validator.ValidateBytes([]byte(`{}`), "broken.schema.json")
	if err == nil || !strings.Contains(err.Error(), "parse schema JSON") {
		t.Errorf("Expected schema parse error, got: %v", err)
	}
}

func TestSchemaValidator_InvalidDataFile(t *testing.T) {
	validator := NewSchemaValidator(testSchemas())

	err := validator.ValidateFile("nonexistent.json", "object.schema.json")
	if err == nil {
		t.Fatal("Expected error for non-existent data file")
	}
	if !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator(testSchemas()).(*validator)

	data := []byte(`{"test": "value"}`)
	if err := v.ValidateBytes(data, "object.schema.json"); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema, got %d", len(v.schemas))
	}

	if err := v.ValidateBytes(data, "object.schema.json"); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema after second validation, got %d", len(v.schemas))
	}
}
