// Package schemas validates raw model output against per-intent JSON Schemas
// and decodes it into typed result records.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// schemaFileFor maps each intent to its embedded schema document.
var schemaFileFor = map[types.Intent]string{
	types.IntentOutline:         "outline.schema.json",
	types.IntentFullPost:        "blog_post.schema.json",
	types.IntentPersona:         "persona.schema.json",
	types.IntentTrendingTopics:  "trending_topics.schema.json",
	types.IntentSeoAnalysis:     "seo_analysis.schema.json",
	types.IntentRepurpose:       "repurposed.schema.json",
	types.IntentSeoFaq:          "seo_faq.schema.json",
	types.IntentContentCalendar: "content_calendar.schema.json",
}

// ValidationError reports why a model response failed schema validation.
// It is a value returned to callers, never panicked.
type ValidationError struct {
	Intent types.Intent
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed for %s:\n", ve.Intent))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Fields returns the names of every field that failed validation.
func (ve *ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		fields = append(fields, err.Field)
	}
	return fields
}

func malformedError(intent types.Intent, cause error) *ValidationError {
	return &ValidationError{
		Intent: intent,
		Errors: []FieldError{{Field: "(root)", Message: fmt.Sprintf("malformed JSON: %v", cause)}},
	}
}

// Validate parses rawText as the structured result for intent.
// It first attempts a structured parse; when the text is wrapped in code
// fences or prose it falls back to best-effort JSON extraction. Computed
// fields (BlogPost.WordCount) are derived locally, never trusted from the
// model. The returned error is always a *ValidationError on shape mismatch.
func Validate(rawText string, intent types.Intent) (types.StructuredResult, error) {
	schemaName, ok := schemaFileFor[intent]
	if !ok {
		return nil, fmt.Errorf("no schema registered for intent %s", intent)
	}

	document := strings.TrimSpace(rawText)
	if !json.Valid([]byte(document)) {
		// Legacy/unstructured responses: extract a JSON document from
		// surrounding prose or markdown fences.
		document = llm.CleanJSONBlock(document)
	}

	schemaContent, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaContent),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return nil, malformedError(intent, err)
	}

	if !result.Valid() {
		ve := &ValidationError{
			Intent: intent,
			Errors: make([]FieldError, 0, len(result.Errors())),
		}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" || field == "(root)" {
				field = "(root)"
				// gojsonschema reports missing properties at the root;
				// name the property itself instead.
				if missing, ok := desc.Details()["property"].(string); ok {
					field = missing
				}
			}
			ve.Errors = append(ve.Errors, FieldError{
				Field:   field,
				Message: desc.Description(),
			})
		}
		return nil, ve
	}

	return decode(document, intent)
}

// decode unmarshals a schema-valid document into its typed record.
func decode(document string, intent types.Intent) (types.StructuredResult, error) {
	data := []byte(document)

	switch intent {
	case types.IntentOutline:
		var record types.Outline
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentFullPost:
		var record types.BlogPost
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		record.RecomputeWordCount()
		return record, nil
	case types.IntentPersona:
		var record types.Persona
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentTrendingTopics:
		var record types.TrendingTopics
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentSeoAnalysis:
		var record types.SeoAnalysis
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentRepurpose:
		var record types.RepurposedContent
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentSeoFaq:
		var record types.SeoFaq
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	case types.IntentContentCalendar:
		var record types.ContentCalendar
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, malformedError(intent, err)
		}
		return record, nil
	default:
		return nil, fmt.Errorf("no decoder for intent %s", intent)
	}
}
