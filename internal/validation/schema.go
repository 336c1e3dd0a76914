package validation

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/GregMSThompson/travel-backend/internal/errs"
)

type Schema struct {
	schema *gojsonschema.Schema
}

// MustCompile panics on an invalid schema; schemas are package constants.
func MustCompile(schema map[string]any) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic("validation: invalid schema: " + err.Error())
	}
	return &Schema{schema: s}
}

// Validate returns a *errs.ValidationError when body is not JSON or does not
// match the schema.
func (s *Schema) Validate(body []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errs.NewValidationError("request body must be valid JSON")
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.Description())
	}
	return errs.NewValidationError(strings.Join(msgs, "; "))
}

var AskRequest = MustCompile(map[string]any{
	"type": "object",
	"properties": map[string]any{
		"user_query": map[string]any{"type": "string"},
	},
	"required": []any{"user_query"},
})
