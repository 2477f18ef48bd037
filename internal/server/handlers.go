package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"resumeai/internal/export"
	"resumeai/internal/genreq"
	"resumeai/internal/github"
	"resumeai/internal/input"
	"resumeai/internal/render"
	"resumeai/internal/resume"
	"resumeai/internal/schema"
)

// Progress phases reported while a generation is outstanding.
const (
	StatusScanningRepos = "SCANNING REPOSITORIES"
	StatusParsingDocs   = "PARSING DOCUMENTS"
	StatusAnalyzingData = "ANALYZING CAREER DATA"
)

var validate = validator.New()

// FileUpload is an uploaded source document, base64 encoded.
type FileUpload struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType" validate:"oneof=application/pdf text/plain"`
	Data     string `json:"data" validate:"required,base64"`
}

// GithubSelection names the repositories to aggregate readmes from.
type GithubSelection struct {
	Username string        `json:"username" validate:"required"`
	Repos    []github.Repo `json:"repos" validate:"min=1"`
}

// GenerateRequest represents the request body for /generate
type GenerateRequest struct {
	Text           string           `json:"text,omitempty"`
	JobDescription string           `json:"jobDescription,omitempty"`
	File           *FileUpload      `json:"file,omitempty"`
	Github         *GithubSelection `json:"github,omitempty"`
}

// GenerateResponse represents the response for /generate
type GenerateResponse struct {
	RunID    string           `json:"runId"`
	Document *resume.Document `json:"document"`
}

// StatusResponse reports whether a generation is outstanding.
type StatusResponse struct {
	Busy   bool   `json:"busy"`
	Status string `json:"status,omitempty"`
}

// ThemeRequest represents the request body for PUT /theme
type ThemeRequest struct {
	Color string `json:"color" validate:"required"`
	Font  string `json:"font" validate:"required"`
}

// TemplateRequest represents the request body for PUT /template
type TemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// TemplatesResponse lists the selectable layout variants.
type TemplatesResponse struct {
	Templates []resume.TemplateType `json:"templates"`
	Current   resume.TemplateType   `json:"current"`
	Fonts     []resume.Font         `json:"fonts"`
	Palette   []string              `json:"palette"`
}

// defaultRepoSelection is how many of the freshest repos the listing suggests
// selecting.
const defaultRepoSelection = 5

// ReposResponse is the repository listing plus the suggested default
// selection.
type ReposResponse struct {
	Repos    []github.Repo `json:"repos"`
	Selected []string      `json:"selected"`
}

// handleGenerate runs a full generation synchronously and replaces the
// stored document on success.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	doc, err := s.runGeneration(r, req, nil)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateResponse{
		RunID:    uuid.New().String(),
		Document: doc,
	})
}

// handleGenerateStream runs a generation and streams progress via SSE.
func (s *Server) handleGenerateStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	runID := uuid.New().String()
	doc, err := s.runGeneration(r, req, func(status string) {
		if err := sse.WriteEvent("status", map[string]string{"status": status}); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteEvent("document", doc); err != nil {
		log.Printf("Error writing SSE document: %v", err)
	}
	sse.WriteComplete(runID, "completed")
}

// decodeGenerateRequest parses and validates the shared generation request
// body.
func (s *Server) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (*GenerateRequest, bool) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if req.File != nil {
		if err := validate.Struct(req.File); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid file upload: "+err.Error())
			return nil, false
		}
	}
	if req.Github != nil {
		if err := validate.Struct(req.Github); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid repository selection: "+err.Error())
			return nil, false
		}
	}

	return &req, true
}

// runGeneration aggregates the sources, calls the model, and stores the
// resulting document. onStatus, when non-nil, observes each phase change.
func (s *Server) runGeneration(r *http.Request, req *GenerateRequest, onStatus func(string)) (*resume.Document, error) {
	initial := StatusParsingDocs
	if req.Github != nil {
		initial = StatusScanningRepos
	}

	if err := s.store.BeginGeneration(initial); err != nil {
		return nil, err
	}
	defer s.store.EndGeneration()

	setStatus := func(status string) {
		s.store.SetStatus(status)
		if onStatus != nil {
			onStatus(status)
		}
	}
	if onStatus != nil {
		onStatus(initial)
	}

	src := input.Sources{
		Text:           req.Text,
		JobDescription: req.JobDescription,
	}
	if req.File != nil {
		content, err := base64.StdEncoding.DecodeString(req.File.Data)
		if err != nil {
			return nil, &input.ValidationError{Message: "file data is not valid base64"}
		}
		src.File = &input.UploadedFile{
			Name:     req.File.Name,
			MimeType: req.File.MimeType,
			Content:  content,
		}
	}
	if req.Github != nil {
		src.Github = &input.RepoSelection{
			Username: req.Github.Username,
			Repos:    req.Github.Repos,
		}
	}

	combined, err := input.Aggregate(r.Context(), src, s.github)
	if err != nil {
		return nil, err
	}

	setStatus(StatusAnalyzingData)

	genRequest, err := genreq.Build(combined)
	if err != nil {
		return nil, err
	}

	doc, err := s.generator.Generate(r.Context(), genRequest)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// handleStatus reports the generation busy flag and its current phase.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	busy, status := s.store.Busy()
	s.jsonResponse(w, http.StatusOK, StatusResponse{Busy: busy, Status: status})
}

// handleGetDocument returns the current resume document.
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handlePutDocument replaces the stored document wholesale.
func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	if err := schema.ValidateDocument(string(raw)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var doc resume.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document JSON: "+err.Error())
		return
	}

	if err := s.store.SetDocument(&doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Document())
}

// handleGetTheme returns the current presentation theme.
func (s *Server) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Theme())
}

// handlePutTheme updates the accent color and font family.
func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid theme: "+err.Error())
		return
	}

	theme := resume.ThemeConfig{Color: req.Color, Font: resume.Font(req.Font)}
	if err := s.store.SetTheme(theme); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Theme())
}

// handleListTemplates lists the layout variants and presentation options.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Templates: resume.Templates(),
		Current:   s.store.Template(),
		Fonts:     resume.Fonts(),
		Palette:   resume.Palette(),
	})
}

// handlePutTemplate selects a layout variant. Selection never touches the
// document itself.
func (s *Server) handlePutTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid template selection: "+err.Error())
		return
	}

	if err := s.store.SetTemplate(resume.TemplateType(req.Template)); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]resume.TemplateType{"template": s.store.Template()})
}

// handleRender returns the rendered HTML for the current document. The
// template query parameter overrides the stored selection for one call;
// mode=coverletter renders the cover letter layout instead.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	rendered, err := s.renderCurrent(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered.HTML)); err != nil {
		log.Printf("Error writing rendered HTML: %v", err)
	}
}

// handleExportPDF prints the rendered document to an A4 PDF.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	rendered, err := s.renderCurrent(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	exporter := export.NewPDFExporter()
	pdf, err := exporter.Export(r.Context(), rendered.HTML)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc := s.store.Document()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(doc.PersonalInfo.FullName, "pdf")+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handleExportDocx converts the rendered document to a Word file.
func (s *Server) handleExportDocx(w http.ResponseWriter, r *http.Request) {
	rendered, err := s.renderCurrent(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	exporter := export.NewDocxExporter(s.store.Theme().Color)
	docx, err := exporter.Export(rendered.HTML)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	doc := s.store.Document()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(doc.PersonalInfo.FullName, "docx")+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(docx); err != nil {
		log.Printf("Error writing DOCX response: %v", err)
	}
}

// handleExportEmail composes a prefilled mailto draft for the document. The
// recipient defaults to the document owner's address; the to query parameter
// overrides it.
func (s *Server) handleExportEmail(w http.ResponseWriter, r *http.Request) {
	doc := s.store.Document()

	to := r.URL.Query().Get("to")
	if to == "" {
		to = doc.PersonalInfo.Email
	}
	if err := validate.Var(to, "required,email"); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No recipient email address found. Please add an email to the resume or pass ?to=")
		return
	}

	s.jsonResponse(w, http.StatusOK, export.ComposeEmail(doc, to))
}

// handleListRepos proxies the repository listing for a username.
func (s *Server) handleListRepos(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		s.errorResponse(w, http.StatusBadRequest, "Username is required")
		return
	}

	repos, err := s.github.ListRepos(r.Context(), username)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// The first five listed repos are the suggested default selection.
	selected := make([]string, 0, defaultRepoSelection)
	for i, repo := range repos {
		if i == defaultRepoSelection {
			break
		}
		selected = append(selected, repo.Name)
	}
	s.jsonResponse(w, http.StatusOK, ReposResponse{Repos: repos, Selected: selected})
}

// renderCurrent executes the layout selected by the request against the
// stored document.
func (s *Server) renderCurrent(r *http.Request) (*render.Rendered, error) {
	doc := s.store.Document()
	theme := s.store.Theme()

	if r.URL.Query().Get("mode") == "coverletter" {
		return s.renderer.RenderCoverLetter(doc, theme)
	}

	sel := s.store.Template()
	if override := r.URL.Query().Get("template"); override != "" {
		sel = resume.ParseTemplateType(override)
	}
	return s.renderer.Render(doc, theme, sel)
}
