package generate

import (
	"encoding/json"
	"strings"

	"resumeai/internal/resume"
	"resumeai/internal/schema"
)

// ParseDocument turns a raw response text into a contract-valid document.
// Markdown code fences are stripped, the text must parse as JSON, and the
// parsed content must satisfy the strict response contract.
func ParseDocument(text string) (*resume.Document, error) {
	cleaned := cleanJSONBlock(text)
	if cleaned == "" {
		return nil, &EmptyResponseError{}
	}

	// Parse check first so malformed JSON is reported as a parse failure,
	// not a contract violation.
	var probe json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	if err := schema.ValidateResponse(cleaned); err != nil {
		return nil, err
	}

	var doc resume.Document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Message: "response does not match the document shape", Cause: err}
	}

	return &doc, nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
