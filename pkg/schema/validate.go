package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks item records against a compiled schema file.
type Validator struct {
	schema *sjsonschema.Schema
}

// NewValidator compiles the schema at schemaPath.
func NewValidator(schemaPath string) (*Validator, error) {
	compiler := sjsonschema.NewCompiler()
	s, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaPath, err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks a JSON document.
func (v *Validator) Validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse record: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
