package main

import (
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/grovetools/wikigen/pkg/schema"
	"github.com/grovetools/wikigen/pkg/writer"
)

// Writes the wikigen.config.yml schema for editor completion. The item
// schema is written per wiki root by 'wikigen schema generate'.
func main() {
	data, err := json.MarshalIndent(schema.ReflectConfig(), "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	out := filepath.Join("schema", "wikigen.config.schema.json")
	if err := writer.NewFile().Write(out, append(data, '\n')); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated config schema at %s", out)
}
