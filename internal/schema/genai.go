package schema

import "github.com/google/generative-ai-go/genai"

// ResponseSchema returns the structured-output declaration attached to every
// generation request. It mirrors the JSON Schema contract so the model is
// constrained to the same shape the response is later validated against.
func ResponseSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	strArray := &genai.Schema{Type: genai.TypeArray, Items: str}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"personalInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fullName": str,
					"email":    str,
					"phone":    str,
					"location": str,
					"linkedin": str,
					"website":  str,
				},
				Required: []string{"fullName", "email"},
			},
			"summary": str,
			"variations": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"summaryCreative":  str,
					"summaryCorporate": str,
					"summaryTechnical": str,
				},
				Required: []string{"summaryCreative", "summaryCorporate", "summaryTechnical"},
			},
			"experience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":        str,
						"company":     str,
						"duration":    str,
						"description": strArray,
					},
					Required: []string{"role", "company", "duration", "description"},
				},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":         str,
						"description":  str,
						"technologies": strArray,
						"link":         str,
					},
					Required: []string{"name", "description", "technologies"},
				},
			},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"degree": str,
						"school": str,
						"year":   str,
					},
					Required: []string{"degree", "school"},
				},
			},
			"skills": strArray,
			"critique": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"score":           {Type: genai.TypeInteger},
					"feedback":        strArray,
					"improvementPlan": str,
					"missingKeywords": strArray,
					"analysis": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"tone":                str,
							"grammarScore":        {Type: genai.TypeInteger},
							"employmentGaps":      strArray,
							"actionVerbStrength":  str,
							"quantificationScore": {Type: genai.TypeInteger},
							"projectComplexity":   str,
						},
						Required: []string{"tone", "grammarScore", "actionVerbStrength"},
					},
				},
				Required: []string{"score", "feedback", "improvementPlan", "analysis"},
			},
			"careerTools": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"coverLetter": str,
					"interviewPrep": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"question": str,
								"answer":   str,
								"type":     {Type: genai.TypeString, Enum: []string{"Behavioral", "Technical", "Situational"}},
							},
						},
					},
					"linkedinHeadline":        str,
					"linkedinAbout":           str,
					"coldEmailRecruiter":      str,
					"linkedinPostOpenToWork":  str,
					"twitterBio":              str,
					"websiteBio":              str,
					"githubReadmeSnippet":     str,
					"salaryEstimation":        str,
					"suggestedCertifications": strArray,
					"suggestedRoles":          strArray,
					"softSkills":              strArray,
					"spanishSummary":          str,
				},
				Required: []string{"coverLetter", "interviewPrep", "linkedinHeadline", "linkedinAbout", "coldEmailRecruiter", "salaryEstimation"},
			},
		},
		Required: []string{"personalInfo", "experience", "projects", "education", "skills", "careerTools", "variations", "critique"},
	}
}
