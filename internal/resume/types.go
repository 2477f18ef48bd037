// Package resume defines the canonical resume document model shared by the
// generation, storage, rendering, and export layers.
package resume

// PersonalInfo holds contact details for the resume owner.
// FullName and Email are required for rendering, export naming, and the
// email-draft handoff.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceItem is a single role. Description is always an ordered list of
// discrete bullet claims (3-5 expected), never one abstractive sentence.
type ExperienceItem struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// ProjectItem is a single project entry. Technologies preserves insertion
// order for display.
type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// EducationItem is a single education entry. Year is free text and may be a
// range.
type EducationItem struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year,omitempty"`
}

// ContentVariations holds three alternate tonal renderings of the summary.
// Once generated they are always co-present and never blended.
type ContentVariations struct {
	SummaryCreative  string `json:"summaryCreative"`
	SummaryCorporate string `json:"summaryCorporate"`
	SummaryTechnical string `json:"summaryTechnical"`
}

// InterviewPrepType categorizes an interview prep entry.
type InterviewPrepType string

// Interview prep categories recognized by the contract.
const (
	PrepBehavioral  InterviewPrepType = "Behavioral"
	PrepTechnical   InterviewPrepType = "Technical"
	PrepSituational InterviewPrepType = "Situational"
)

// InterviewPrep is a categorized question/answer pair.
type InterviewPrep struct {
	Question string            `json:"question"`
	Answer   string            `json:"answer"`
	Type     InterviewPrepType `json:"type"`
}

// AnalysisMetrics holds deep analytics produced alongside the critique.
// Scores are bounded 0-100.
type AnalysisMetrics struct {
	Tone                string   `json:"tone"`
	GrammarScore        int      `json:"grammarScore"`
	EmploymentGaps      []string `json:"employmentGaps,omitempty"`
	ActionVerbStrength  string   `json:"actionVerbStrength"`
	QuantificationScore int      `json:"quantificationScore,omitempty"`
	ProjectComplexity   string   `json:"projectComplexity,omitempty"`
}

// ResumeCritique scores the generated document and lists improvements.
type ResumeCritique struct {
	Score           int              `json:"score"`
	Feedback        []string         `json:"feedback"`
	ImprovementPlan string           `json:"improvementPlan"`
	MissingKeywords []string         `json:"missingKeywords,omitempty"`
	Analysis        *AnalysisMetrics `json:"analysis,omitempty"`
}

// CareerTools is the auxiliary generated content: outreach drafts, interview
// prep, social bios, and market guidance. It is attached to, but never
// required by, the core rendering path.
type CareerTools struct {
	CoverLetter             string          `json:"coverLetter"`
	InterviewPrep           []InterviewPrep `json:"interviewPrep"`
	LinkedInHeadline        string          `json:"linkedinHeadline"`
	LinkedInAbout           string          `json:"linkedinAbout"`
	ColdEmailRecruiter      string          `json:"coldEmailRecruiter"`
	LinkedInPostOpenToWork  string          `json:"linkedinPostOpenToWork,omitempty"`
	TwitterBio              string          `json:"twitterBio,omitempty"`
	WebsiteBio              string          `json:"websiteBio,omitempty"`
	GithubReadmeSnippet     string          `json:"githubReadmeSnippet,omitempty"`
	SalaryEstimation        string          `json:"salaryEstimation"`
	SuggestedCertifications []string        `json:"suggestedCertifications,omitempty"`
	SuggestedRoles          []string        `json:"suggestedRoles,omitempty"`
	SoftSkills              []string        `json:"softSkills,omitempty"`
	SpanishSummary          string          `json:"spanishSummary,omitempty"`
}

// Document is the canonical structured output of generation and the system's
// primary data artifact. A successful generation replaces the whole document
// atomically; partial merges are not supported.
type Document struct {
	PersonalInfo PersonalInfo       `json:"personalInfo"`
	Summary      string             `json:"summary"`
	Experience   []ExperienceItem   `json:"experience"`
	Projects     []ProjectItem      `json:"projects"`
	Education    []EducationItem    `json:"education"`
	Skills       []string           `json:"skills"`
	Critique     *ResumeCritique    `json:"critique,omitempty"`
	CareerTools  *CareerTools       `json:"careerTools,omitempty"`
	Variations   *ContentVariations `json:"variations,omitempty"`
}
