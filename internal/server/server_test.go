package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/internal/genreq"
	"resumeai/internal/resume"
)

// stubGenerator satisfies the generation interface without touching the
// network.
type stubGenerator struct {
	doc      *resume.Document
	err      error
	requests []*genreq.Request
}

func (g *stubGenerator) Generate(_ context.Context, req *genreq.Request) (*resume.Document, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return g.doc.Clone(), nil
}

func (g *stubGenerator) Close() error { return nil }

func testDocument() *resume.Document {
	return &resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			LinkedIn: "https://linkedin.com/in/janedoe",
		},
		Summary: "Backend engineer with six years of distributed systems work.",
		Experience: []resume.ExperienceItem{
			{
				Role:        "Senior Engineer",
				Company:     "Acme Corp",
				Duration:    "2020 - Present",
				Description: []string{"Led migration to event-driven architecture", "Cut p99 latency by 40%"},
			},
		},
		Projects: []resume.ProjectItem{
			{Name: "Queueing Library", Description: "Lock-free MPSC queue", Technologies: []string{"Go"}},
		},
		Education: []resume.EducationItem{
			{Degree: "BSc Computer Science", School: "State University", Year: "2018"},
		},
		Skills: []string{"Go", "Kubernetes", "PostgreSQL"},
	}
}

func newTestServer(t *testing.T, gen *stubGenerator) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0, StateDir: t.TempDir()}, gen)
	require.NoError(t, err)
	return s
}

func doRequest(s *Server, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestHandleGenerate_TextSource(t *testing.T) {
	gen := &stubGenerator{doc: testDocument()}
	s := newTestServer(t, gen)

	rec := doRequest(s, http.MethodPost, "/generate", GenerateRequest{
		Text: "Ten years of Go experience at Acme Corp.",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, "Jane Doe", resp.Document.PersonalInfo.FullName)

	// Document is persisted as the current state
	rec = doRequest(s, http.MethodGet, "/document", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc resume.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)

	require.Len(t, gen.requests, 1)
}

func TestHandleGenerate_JobDescriptionOnly(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodPost, "/generate", GenerateRequest{
		JobDescription: "Looking for a staff engineer.",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one input source")
}

func TestHandleGenerate_RejectsConcurrent(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	require.NoError(t, s.store.BeginGeneration(StatusParsingDocs))
	defer s.store.EndGeneration()

	rec := doRequest(s, http.MethodPost, "/generate", GenerateRequest{Text: "some background"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already in progress")
}

func TestHandleGenerate_InvalidFileType(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodPost, "/generate", map[string]any{
		"file": map[string]string{
			"name":     "resume.png",
			"mimeType": "image/png",
			"data":     "aGVsbG8=",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatus(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Busy)

	require.NoError(t, s.store.BeginGeneration(StatusScanningRepos))
	defer s.store.EndGeneration()

	rec = doRequest(s, http.MethodGet, "/status", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Busy)
	assert.Equal(t, StatusScanningRepos, status.Status)
}

func TestHandleGetDocument_StartsWithSample(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/document", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc resume.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Alex Rivera", doc.PersonalInfo.FullName)
}

func TestHandlePutDocument(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	doc := testDocument()
	rec := doRequest(s, http.MethodPut, "/document", doc)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored := s.store.Document()
	assert.Equal(t, "Jane Doe", stored.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, stored.Skills)
}

func TestHandlePutDocument_ContractViolation(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	// Missing personalInfo entirely
	rec := doRequest(s, http.MethodPut, "/document", map[string]any{
		"summary": "no contact details",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Stored state untouched
	assert.Equal(t, "Alex Rivera", s.store.Document().PersonalInfo.FullName)
}

func TestHandleTheme(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var theme resume.ThemeConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theme))
	assert.Equal(t, resume.DefaultTheme(), theme)

	rec = doRequest(s, http.MethodPut, "/theme", ThemeRequest{Color: "#FF5733", Font: "font-serif"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "#FF5733", s.store.Theme().Color)
	assert.Equal(t, resume.FontSerif, s.store.Theme().Font)
}

func TestHandleTheme_UnknownFont(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodPut, "/theme", ThemeRequest{Color: "#FF5733", Font: "comic-sans"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListTemplates(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TemplatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 20)
	assert.Equal(t, resume.TemplateExecutive, resp.Current)
	assert.NotEmpty(t, resp.Fonts)
	assert.NotEmpty(t, resp.Palette)
}

func TestHandlePutTemplate_DoesNotTouchDocument(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	before := s.store.Document()

	rec := doRequest(s, http.MethodPut, "/template", TemplateRequest{Template: "Tech"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, resume.TemplateTech, s.store.Template())

	assert.Equal(t, before, s.store.Document())
}

func TestHandlePutTemplate_UnknownFallsBack(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodPut, "/template", TemplateRequest{Template: "Nonexistent"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, resume.TemplateExecutive, s.store.Template())
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/render", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Alex Rivera")
}

func TestHandleRender_TemplateOverride(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/render?template=Glitch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alex Rivera")

	// Override is per-call, selection unchanged
	assert.Equal(t, resume.TemplateExecutive, s.store.Template())
}

func TestHandleRender_CoverLetter(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/render?mode=coverletter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dear Hiring Manager")
}

func TestHandleRender_CoverLetterMissing(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	// Replace with a document that has no career tools
	require.NoError(t, s.store.SetDocument(testDocument()))

	rec := doRequest(s, http.MethodGet, "/render?mode=coverletter", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleExportEmail(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	rec := doRequest(s, http.MethodGet, "/export/email?to=recruiter@example.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var draft struct {
		MailtoURL string `json:"mailtoUrl"`
		Subject   string `json:"subject"`
		Body      string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.True(t, strings.HasPrefix(draft.MailtoURL, "mailto:recruiter@example.com?"))
	assert.Equal(t, "Resume Draft: Alex Rivera", draft.Subject)
	assert.Contains(t, draft.Body, "SUMMARY")
	assert.Contains(t, draft.Body, "attach it to this email manually")
}

func TestHandleExportEmail_DefaultsToOwnerAddress(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	// No ?to= override: the stored sample document's own email is used.
	rec := doRequest(s, http.MethodGet, "/export/email", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var draft struct {
		MailtoURL string `json:"mailtoUrl"`
		To        string `json:"to"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, "alex.rivera@example.com", draft.To)
	assert.True(t, strings.HasPrefix(draft.MailtoURL, "mailto:alex.rivera@example.com?"))
}

func TestHandleExportEmail_NoAddressAnywhere(t *testing.T) {
	s := newTestServer(t, &stubGenerator{doc: testDocument()})

	doc := testDocument()
	doc.PersonalInfo.Email = ""
	require.NoError(t, s.store.SetDocument(doc))

	rec := doRequest(s, http.MethodGet, "/export/email", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListRepos(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/janedoe/repos" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"queueing","description":"Lock-free queue","language":"Go","stargazers_count":42,"html_url":"https://github.com/janedoe/queueing"}]`))
	}))
	defer upstream.Close()

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	s, err := New(Config{Port: 0, StateDir: t.TempDir(), GithubBaseURL: upstream.URL}, &stubGenerator{doc: testDocument()})
	require.NoError(t, err)

	rec := doRequest(s, http.MethodGet, "/github/janedoe/repos", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ReposResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Repos, 1)
	assert.Equal(t, "queueing", resp.Repos[0].Name)
	assert.Equal(t, 42, resp.Repos[0].Stars)
	assert.Equal(t, []string{"queueing"}, resp.Selected)
}

func TestHandleGenerate_GithubSource(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/janedoe/queueing/readme":
			_, _ = w.Write([]byte("# Queueing\nA lock-free MPSC queue."))
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	gen := &stubGenerator{doc: testDocument()}
	s, err := New(Config{Port: 0, StateDir: t.TempDir(), GithubBaseURL: upstream.URL}, gen)
	require.NoError(t, err)

	rec := doRequest(s, http.MethodPost, "/generate", map[string]any{
		"github": map[string]any{
			"username": "janedoe",
			"repos":    []map[string]any{{"id": 1, "name": "queueing", "language": "Go"}},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The aggregated repository blob reached the generation request
	require.Len(t, gen.requests, 1)
	var sawGithub bool
	for _, seg := range gen.requests[0].Segments {
		if strings.Contains(seg.Text, "lock-free MPSC queue") {
			sawGithub = true
		}
	}
	assert.True(t, sawGithub, "expected readme content in the generation request")
}

func TestHandleGenerateStream(t *testing.T) {
	gen := &stubGenerator{doc: testDocument()}
	s := newTestServer(t, gen)

	rec := doRequest(s, http.MethodPost, "/generate/stream", GenerateRequest{Text: "background text"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, StatusAnalyzingData)
	assert.Contains(t, body, "event: document")
	assert.Contains(t, body, "event: complete")
}
