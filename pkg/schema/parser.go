package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Parser renders a JSON schema file as a plain text field reference.
type Parser struct {
	schemaData map[string]interface{}
}

// NewParser reads the schema at schemaPath.
func NewParser(schemaPath string) (*Parser, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schemaData map[string]interface{}
	if err := json.Unmarshal(data, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return &Parser{schemaData: schemaData}, nil
}

// RenderAsText converts the loaded schema into a plain text representation.
func (p *Parser) RenderAsText() string {
	var builder strings.Builder

	if title, ok := p.schemaData["title"].(string); ok {
		builder.WriteString(fmt.Sprintf("Schema Title: %s\n", title))
	}
	if description, ok := p.schemaData["description"].(string); ok {
		builder.WriteString(fmt.Sprintf("Schema Description: %s\n", description))
	}
	builder.WriteString("\n")

	root := p.schemaData
	if ref, ok := root["$ref"].(string); ok {
		if resolved := p.resolveRef(ref); resolved != nil {
			root = resolved
		}
	}
	if properties, ok := root["properties"].(map[string]interface{}); ok {
		p.renderProperties(&builder, properties, requiredSet(root), 0)
	}

	return builder.String()
}

func (p *Parser) renderProperties(builder *strings.Builder, properties map[string]interface{}, required map[string]bool, indentLevel int) {
	indent := strings.Repeat("  ", indentLevel)

	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop, ok := properties[key].(map[string]interface{})
		if !ok {
			continue
		}

		if ref, ok := prop["$ref"].(string); ok {
			prop = p.resolveRef(ref)
			if prop == nil {
				continue
			}
		}

		propType, _ := prop["type"].(string)
		description, _ := prop["description"].(string)

		label := fmt.Sprintf("`%s`", key)
		if required[key] {
			label += " (required)"
		}
		builder.WriteString(fmt.Sprintf("%s- Property: %s\n", indent, label))
		builder.WriteString(fmt.Sprintf("%s  - Type: %s\n", indent, propType))
		if description != "" {
			builder.WriteString(fmt.Sprintf("%s  - Description: %s\n", indent, description))
		}

		switch propType {
		case "object":
			if nestedProps, ok := prop["properties"].(map[string]interface{}); ok {
				p.renderProperties(builder, nestedProps, requiredSet(prop), indentLevel+2)
			}
		case "array":
			if items, ok := prop["items"].(map[string]interface{}); ok {
				builder.WriteString(fmt.Sprintf("%s  - Items:\n", indent))
				itemProps := map[string]interface{}{"item": items}
				p.renderProperties(builder, itemProps, nil, indentLevel+2)
			}
		}
	}
}

func requiredSet(schema map[string]interface{}) map[string]bool {
	set := make(map[string]bool)
	if list, ok := schema["required"].([]interface{}); ok {
		for _, name := range list {
			if s, ok := name.(string); ok {
				set[s] = true
			}
		}
	}
	return set
}

func (p *Parser) resolveRef(ref string) map[string]interface{} {
	parts := strings.Split(ref, "/")
	if len(parts) < 2 || parts[0] != "#" {
		return nil // Only local refs
	}

	var current interface{} = p.schemaData
	for _, part := range parts[1:] {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current, ok = m[part]
		if !ok {
			return nil
		}
	}

	if resolved, ok := current.(map[string]interface{}); ok {
		return resolved
	}

	return nil
}
