// Package record loads wiki item records: JSON documents with a top-level id
// and the acnh_data, cosmic_data, technical_implementation and wiki_metadata
// sections. Records are kept untyped so that any externally authored shape
// can be rendered, and object key order is preserved.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Section names of an item record.
const (
	SectionACNH      = "acnh_data"
	SectionCosmic    = "cosmic_data"
	SectionTechnical = "technical_implementation"
	SectionWiki      = "wiki_metadata"
)

// Record is a decoded item record together with the bytes it came from.
type Record struct {
	Value
	Source []byte
}

// Load reads and parses the record at path.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return rec, nil
}

// Parse decodes a record. The document must be a JSON object.
func Parse(data []byte) (*Record, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if v.Kind() != Object {
		return nil, fmt.Errorf("item record must be a JSON object, got %s", v.Kind())
	}
	return &Record{Value: v, Source: data}, nil
}

// ACNH returns the acnh_data section.
func (r *Record) ACNH() Value { return r.Section(SectionACNH) }

// Cosmic returns the cosmic_data section.
func (r *Record) Cosmic() Value { return r.Section(SectionCosmic) }

// Technical returns the technical_implementation section.
func (r *Record) Technical() Value { return r.Section(SectionTechnical) }

// Wiki returns the wiki_metadata section.
func (r *Record) Wiki() Value { return r.Section(SectionWiki) }

// Indented returns the source document re-indented with two spaces. Key
// order and number literals are kept as written.
func (r *Record) Indented() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(r.Source), "", "  "); err != nil {
		return string(r.Source)
	}
	return buf.String()
}
