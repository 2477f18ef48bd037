package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullResponse returns a generation response satisfying the strict
// contract. Tests mutate it to produce violations.
func fullResponse() map[string]any {
	return map[string]any{
		"personalInfo": map[string]any{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
		},
		"summary": "Backend engineer.",
		"experience": []any{
			map[string]any{
				"role":        "Senior Engineer",
				"company":     "Acme Corp",
				"duration":    "2020 - Present",
				"description": []any{"Led the platform migration"},
			},
		},
		"projects": []any{
			map[string]any{
				"name":         "Queueing Library",
				"description":  "Lock-free MPSC queue",
				"technologies": []any{"Go"},
			},
		},
		"education": []any{
			map[string]any{"degree": "BSc", "school": "State University", "year": "2018"},
		},
		"skills": []any{"Go", "PostgreSQL"},
		"careerTools": map[string]any{
			"coverLetter":        "Dear Hiring Manager,",
			"interviewPrep":      []any{map[string]any{"question": "Q", "answer": "A", "type": "Behavioral"}},
			"linkedinHeadline":   "Senior Engineer",
			"linkedinAbout":      "About text",
			"coldEmailRecruiter": "Hello,",
			"salaryEstimation":   "$150k - $180k",
		},
		"variations": map[string]any{
			"summaryCreative":  "Creative take.",
			"summaryCorporate": "Corporate take.",
			"summaryTechnical": "Technical take.",
		},
		"critique": map[string]any{
			"score":           82,
			"feedback":        []any{"Quantify more results"},
			"improvementPlan": "Add metrics to older roles.",
			"analysis": map[string]any{
				"tone":               "Professional",
				"grammarScore":       95,
				"actionVerbStrength": "Strong",
			},
		},
	}
}

func marshal(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestValidateResponse_Valid(t *testing.T) {
	assert.NoError(t, ValidateResponse(marshal(t, fullResponse())))
}

func TestValidateResponse_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{
			name:   "missing personalInfo",
			mutate: func(doc map[string]any) { delete(doc, "personalInfo") },
		},
		{
			name: "empty fullName",
			mutate: func(doc map[string]any) {
				doc["personalInfo"].(map[string]any)["fullName"] = ""
			},
		},
		{
			name:   "missing critique",
			mutate: func(doc map[string]any) { delete(doc, "critique") },
		},
		{
			name:   "missing variations",
			mutate: func(doc map[string]any) { delete(doc, "variations") },
		},
		{
			name: "description as string instead of array",
			mutate: func(doc map[string]any) {
				exp := doc["experience"].([]any)[0].(map[string]any)
				exp["description"] = "one flat sentence"
			},
		},
		{
			name: "empty description array",
			mutate: func(doc map[string]any) {
				exp := doc["experience"].([]any)[0].(map[string]any)
				exp["description"] = []any{}
			},
		},
		{
			name: "score out of range",
			mutate: func(doc map[string]any) {
				doc["critique"].(map[string]any)["score"] = 140
			},
		},
		{
			name: "unknown interview prep type",
			mutate: func(doc map[string]any) {
				tools := doc["careerTools"].(map[string]any)
				tools["interviewPrep"] = []any{
					map[string]any{"question": "Q", "answer": "A", "type": "Casual"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fullResponse()
			tt.mutate(doc)

			err := ValidateResponse(marshal(t, doc))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	err := ValidateResponse("{not json")
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestValidateDocument_LenientOnGeneratedSections(t *testing.T) {
	doc := fullResponse()
	delete(doc, "critique")
	delete(doc, "careerTools")
	delete(doc, "variations")

	assert.NoError(t, ValidateDocument(marshal(t, doc)))
}

func TestValidateDocument_StillRequiresCore(t *testing.T) {
	doc := fullResponse()
	delete(doc, "personalInfo")

	err := ValidateDocument(marshal(t, doc))
	assert.Error(t, err)
}

func TestValidationError_ListsEveryViolation(t *testing.T) {
	doc := fullResponse()
	delete(doc, "critique")
	delete(doc, "variations")

	err := ValidateResponse(marshal(t, doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
	assert.Contains(t, ve.Error(), "resume contract violated")
}
