// Package generate issues the assembled request to the external generative
// service and validates the response against the resume document contract.
package generate

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resumeai/internal/genreq"
	"resumeai/internal/resume"
	"resumeai/internal/schema"
)

// DefaultModel is the model every generation request targets.
const DefaultModel = "gemini-2.5-flash"

// Generator is the abstraction over the generative service. The server and
// CLI depend on this interface; tests substitute a stub.
type Generator interface {
	// Generate performs one call and returns a contract-valid document, or a
	// typed failure. It never mutates application state; committing the
	// result is the caller's job.
	Generate(ctx context.Context, req *genreq.Request) (*resume.Document, error)
	// Close releases any resources held by the generator.
	Close() error
}

// GeminiClient implements Generator for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a generation client. The model defaults to
// DefaultModel when empty.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends the request with the response-schema declaration attached
// and validates the reply before accepting it.
func (c *GeminiClient) Generate(ctx context.Context, req *genreq.Request) (*resume.Document, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema.ResponseSchema()
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}

	parts, err := buildParts(req.Segments)
	if err != nil {
		return nil, err
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, &ServiceError{Message: "content generation failed", Cause: err}
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	return ParseDocument(text)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// buildParts converts ordered request segments into API content parts.
// Opaque file payloads are forwarded as inline data.
func buildParts(segments []genreq.Segment) ([]genai.Part, error) {
	parts := make([]genai.Part, 0, len(segments))
	for _, seg := range segments {
		if seg.File != nil {
			raw, err := base64.StdEncoding.DecodeString(seg.File.Data)
			if err != nil {
				return nil, &ServiceError{Message: "invalid file payload encoding", Cause: err}
			}
			parts = append(parts, genai.Blob{MIMEType: seg.File.MimeType, Data: raw})
			continue
		}
		parts = append(parts, genai.Text(seg.Text))
	}
	return parts, nil
}

// extractText pulls the text payload out of the API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &EmptyResponseError{}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &EmptyResponseError{}
	}

	var text string
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	if text == "" {
		return "", &EmptyResponseError{}
	}
	return text, nil
}
