// Package render maps a resume document and presentation preferences through
// one of twenty interchangeable layout variants. Rendering is pure: the same
// document, theme, and template always produce the same HTML, and the input
// document is never mutated.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"

	"resumeai/internal/resume"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// MaxProjects caps the projects section in every variant for layout
// stability. Bullet and skill lists are never truncated.
const MaxProjects = 5

// templateNames maps the closed identifier set to template definitions.
// Dispatch through this map is total: unknown identifiers fall back to the
// Executive variant.
var templateNames = map[resume.TemplateType]string{
	resume.TemplateExecutive:   "executive",
	resume.TemplateElegant:     "elegant",
	resume.TemplateModern:      "modern",
	resume.TemplateCreative:    "creative",
	resume.TemplateMinimal:     "minimal",
	resume.TemplateClassic:     "classic",
	resume.TemplateTimeline:    "timeline",
	resume.TemplateGrid:        "grid",
	resume.TemplateStartup:     "startup",
	resume.TemplateAcademic:    "academic",
	resume.TemplateTech:        "tech",
	resume.TemplateSwiss:       "swiss",
	resume.TemplateBold:        "bold",
	resume.TemplateCompact:     "compact",
	resume.TemplateArtistic:    "artistic",
	resume.TemplateInfographic: "infographic",
	resume.TemplateMonochrome:  "monochrome",
	resume.TemplateFocused:     "focused",
	resume.TemplateMagazine:    "magazine",
	resume.TemplateGlitch:      "glitch",
}

// coverLetterTemplate is the single-section layout used in cover letter
// mode.
const coverLetterTemplate = "coverletter"

// Error represents a failure executing a layout template.
type Error struct {
	Template string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render error in template %s: %v", e.Template, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrNoCoverLetter indicates cover letter mode was requested on a document
// without one.
type ErrNoCoverLetter struct{}

func (e *ErrNoCoverLetter) Error() string {
	return "document has no cover letter to render"
}

// Rendered is the visual document produced by one render call.
type Rendered struct {
	HTML     string
	Template resume.TemplateType
}

// renderContext is the data handed to every layout template.
type renderContext struct {
	Data  *resume.Document
	Theme resume.ThemeConfig
	Color template.CSS
	Font  template.CSS
}

// Renderer holds the parsed layout set. Safe for concurrent use.
type Renderer struct {
	tpl *template.Template
}

// New parses the embedded layout variants.
func New() (*Renderer, error) {
	tpl, err := template.New("resume").Funcs(funcMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the resume layout for the selected template. Selection is
// total over the template enumeration; an unrecognized identifier renders
// the Executive variant.
func (r *Renderer) Render(doc *resume.Document, theme resume.ThemeConfig, sel resume.TemplateType) (*Rendered, error) {
	name, ok := templateNames[sel]
	if !ok {
		sel = resume.TemplateExecutive
		name = templateNames[sel]
	}
	return r.execute(name, sel, doc, theme)
}

// RenderCoverLetter produces the single-section cover letter layout.
func (r *Renderer) RenderCoverLetter(doc *resume.Document, theme resume.ThemeConfig) (*Rendered, error) {
	if doc.CareerTools == nil || doc.CareerTools.CoverLetter == "" {
		return nil, &ErrNoCoverLetter{}
	}
	return r.execute(coverLetterTemplate, resume.TemplateExecutive, doc, theme)
}

func (r *Renderer) execute(name string, sel resume.TemplateType, doc *resume.Document, theme resume.ThemeConfig) (*Rendered, error) {
	ctx := renderContext{
		Data:  doc,
		Theme: theme,
		Color: safeColor(theme.Color),
		Font:  fontStack(theme.Font),
	}

	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, ctx); err != nil {
		return nil, &Error{Template: name, Cause: err}
	}
	return &Rendered{HTML: buf.String(), Template: sel}, nil
}

// colorPattern accepts hex colors and plain color keywords. Anything else
// falls back to the default accent so freeform input cannot inject CSS.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+)$`)

func safeColor(color string) template.CSS {
	if !colorPattern.MatchString(color) {
		color = resume.DefaultTheme().Color
	}
	return template.CSS(color)
}

// fontStack maps the enumerated font families to CSS stacks.
func fontStack(font resume.Font) template.CSS {
	switch font {
	case resume.FontSerif:
		return "Georgia, 'Times New Roman', serif"
	case resume.FontMono:
		return "'Courier New', Courier, monospace"
	case resume.FontDisplay:
		return "'Trebuchet MS', 'Segoe UI', sans-serif"
	case resume.FontSlab:
		return "'Roboto Slab', Rockwell, serif"
	case resume.FontOswald:
		return "Oswald, 'Arial Narrow', sans-serif"
	case resume.FontLato:
		return "Lato, 'Helvetica Neue', sans-serif"
	default:
		return "'Helvetica Neue', Helvetica, Arial, sans-serif"
	}
}
