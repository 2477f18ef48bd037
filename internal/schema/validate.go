// Package schema holds the resume document contract: the JSON Schemas a
// generated or user-supplied document must satisfy, and the response-schema
// declaration sent with every generation request.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_response.json
var responseSchemaJSON string

//go:embed resume_document.json
var documentSchemaJSON string

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every contract violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume contract violated:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResponse checks a raw generation response against the strict
// contract: all top-level sections present, experience descriptions as bullet
// arrays, scores in range.
func ValidateResponse(jsonContent string) error {
	return validateAgainst(responseSchemaJSON, jsonContent)
}

// ValidateDocument checks a stored or user-supplied document against the
// lenient contract, where critique, career tools, and variations are optional.
func ValidateDocument(jsonContent string) error {
	return validateAgainst(documentSchemaJSON, jsonContent)
}

func validateAgainst(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// The document did not even parse as JSON (the embedded schemas are
		// known-good), so report it as a single root-level violation.
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
