package export

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fumiama/go-docx"
)

// DocxExporter converts rendered resume HTML into a Word document by
// walking the heading and text structure. Layout CSS does not survive the
// conversion; the PDF export is the high fidelity path.
type DocxExporter struct {
	accent string
}

// NewDocxExporter accepts the theme accent color used for headings.
func NewDocxExporter(accent string) *DocxExporter {
	return &DocxExporter{accent: docxColor(accent)}
}

// Export walks h1/h2/h3, paragraphs, and list items in document order and
// emits one DOCX paragraph per element.
func (e *DocxExporter) Export(html string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ConversionError{Format: "DOCX", Fallback: "PDF", Cause: err}
	}

	w := docx.New().WithDefaultTheme()

	doc.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		text := collapseSpace(s.Text())
		if text == "" {
			return
		}
		para := w.AddParagraph()
		switch goquery.NodeName(s) {
		case "h1":
			para.AddText(text).Size("40").Bold()
		case "h2":
			para.AddText(strings.ToUpper(text)).Size("26").Bold().Color(e.accent)
		case "h3":
			para.AddText(text).Size("24").Bold()
		case "li":
			para.AddText("• " + text).Size("22")
		default:
			para.AddText(text).Size("22")
		}
	})

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, &ConversionError{Format: "DOCX", Fallback: "PDF", Cause: err}
	}
	return buf.Bytes(), nil
}

// collapseSpace flattens the whitespace runs left behind by HTML
// indentation.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// hexColor matches a bare RGB or RRGGBB value. The Word color attribute
// accepts only the six-digit form.
var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{3}$|^[0-9a-fA-F]{6}$`)

// docxColor strips the leading # from a hex accent and expands shorthand.
// Keyword or otherwise non-hex colors fall back to black.
func docxColor(accent string) string {
	c := strings.TrimPrefix(strings.TrimSpace(accent), "#")
	if !hexColor.MatchString(c) {
		return "000000"
	}
	if len(c) == 3 {
		c = strings.Repeat(string(c[0]), 2) + strings.Repeat(string(c[1]), 2) + strings.Repeat(string(c[2]), 2)
	}
	return c
}
