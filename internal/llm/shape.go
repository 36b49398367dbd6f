// Package llm - shape.go declares provider-neutral response shapes for
// schema-constrained generation.
package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// FieldType is the declared type of a response field.
type FieldType string

// Field types supported in response shapes.
const (
	FieldString      FieldType = "string"
	FieldInteger     FieldType = "integer"
	FieldStringArray FieldType = "string_array"
	FieldObjectArray FieldType = "object_array"
)

// ResponseSchema declares the shape a generation response must conform to.
// The Gemini client converts it to a native response schema; other providers
// can fall back to the rendered instruction block.
type ResponseSchema struct {
	Name   string
	Fields []SchemaField
}

// SchemaField defines a single field in the expected response.
// Fields is populated only for object_array elements.
type SchemaField struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool
	Fields      []SchemaField
}

// toGenaiSchema converts the shape into the Gemini SDK's schema type.
func (s *ResponseSchema) toGenaiSchema() *genai.Schema {
	return objectSchema(s.Fields)
}

func objectSchema(fields []SchemaField) *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(fields)),
	}
	for _, field := range fields {
		schema.Properties[field.Name] = fieldSchema(field)
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

func fieldSchema(field SchemaField) *genai.Schema {
	switch field.Type {
	case FieldInteger:
		return &genai.Schema{Type: genai.TypeInteger, Description: field.Description}
	case FieldStringArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: field.Description,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	case FieldObjectArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: field.Description,
			Items:       objectSchema(field.Fields),
		}
	default:
		return &genai.Schema{Type: genai.TypeString, Description: field.Description}
	}
}

// Instructions renders a textual description of the expected JSON structure.
// Used when re-prompting after a validation failure and for providers without
// native schema-constrained output.
func (s *ResponseSchema) Instructions() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Respond with ONLY valid JSON matching the %s schema:\n{\n", s.Name))
	writeFieldLines(&sb, s.Fields, "  ")
	sb.WriteString("}\n")
	sb.WriteString("No markdown, no explanation, no code blocks.\n")
	return sb.String()
}

func writeFieldLines(sb *strings.Builder, fields []SchemaField, indent string) {
	for i, field := range fields {
		typeHint := typeHintFor(field)
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("%s\"%s\": %s%s", indent, field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
}

func typeHintFor(field SchemaField) string {
	switch field.Type {
	case FieldInteger:
		return "integer"
	case FieldStringArray:
		return `["string"]`
	case FieldObjectArray:
		var sb strings.Builder
		sb.WriteString("[{\n")
		writeFieldLines(&sb, field.Fields, "    ")
		sb.WriteString("  }]")
		return sb.String()
	default:
		return `"string"`
	}
}
