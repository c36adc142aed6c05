// Package schema produces the item record JSON schema, validates records
// against it and renders it as a plain text field reference.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/wikigen/pkg/config"
	"github.com/grovetools/wikigen/pkg/record"
	"github.com/grovetools/wikigen/pkg/writer"
	"github.com/invopop/jsonschema"
)

// Reflect builds the item schema from record.Item. Only id is required and
// unknown fields are allowed, matching how the generator reads records.
func Reflect() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:                  true,
		AllowAdditionalProperties:  true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}

	s := r.Reflect(&record.Item{})
	s.Title = "Cosmic Colony Wiki Item"
	s.Description = "An item record describing one wiki subject across its ACNH and Cosmic Colony forms."
	return s
}

// Write reflects the item schema and writes it to path.
func Write(w writer.Writer, path string) error {
	data, err := json.MarshalIndent(Reflect(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal item schema: %w", err)
	}
	return w.Write(path, append(data, '\n'))
}

// ReflectConfig builds the schema of wikigen.config.yml from
// config.WikiConfig, keyed by its yaml field names.
func ReflectConfig() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:                 true,
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	s := r.Reflect(&config.WikiConfig{})
	s.Title = "Wikigen Configuration"
	s.Description = "Path overrides for a wiki root. Relative paths resolve against the root."
	return s
}
