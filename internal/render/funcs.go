package render

import (
	"html/template"
	"strings"

	"resumeai/internal/resume"
)

// funcMap returns the helpers shared by every layout variant.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"take":     takeProjects,
		"join":     strings.Join,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"initials": initials,
		"firstrune": func(s string) string {
			for _, r := range s {
				return string(r)
			}
			return ""
		},
		"barwidth": barWidth,
	}
}

// takeProjects returns at most n projects without touching the input slice.
func takeProjects(projects []resume.ProjectItem, n int) []resume.ProjectItem {
	if len(projects) <= n {
		return projects
	}
	return projects[:n]
}

// initials builds a two-letter monogram from a full name.
func initials(name string) string {
	fields := strings.Fields(name)
	var sb strings.Builder
	for i, f := range fields {
		if i >= 2 {
			break
		}
		for _, r := range f {
			sb.WriteRune(r)
			break
		}
	}
	return strings.ToUpper(sb.String())
}

// barWidth spreads list positions across a 60-100% range so infographic
// style skill bars vary deterministically.
func barWidth(index int) int {
	return 100 - (index%5)*10
}
