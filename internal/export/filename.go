// Package export turns rendered resume HTML into downloadable artifacts:
// an A4 PDF printed through headless Chrome, a DOCX assembled from the
// document structure, and a prefilled mailto URL for sharing the draft.
package export

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename builds the download name for an exported resume, substituting
// underscores for whitespace in the candidate's name.
func Filename(fullName, ext string) string {
	name := whitespaceRun.ReplaceAllString(strings.TrimSpace(fullName), "_")
	if name == "" {
		name = "Export"
	}
	return "Resume_" + name + "." + ext
}
