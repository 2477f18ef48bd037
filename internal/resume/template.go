package resume

import "strings"

// TemplateType identifies one of the twenty interchangeable layout variants.
type TemplateType string

// The closed set of template identifiers. Dispatch over this set is total;
// unknown identifiers fall back to TemplateExecutive.
const (
	TemplateExecutive   TemplateType = "EXECUTIVE"
	TemplateElegant     TemplateType = "ELEGANT"
	TemplateModern      TemplateType = "MODERN"
	TemplateCreative    TemplateType = "CREATIVE"
	TemplateMinimal     TemplateType = "MINIMAL"
	TemplateClassic     TemplateType = "CLASSIC"
	TemplateTimeline    TemplateType = "TIMELINE"
	TemplateGrid        TemplateType = "GRID"
	TemplateStartup     TemplateType = "STARTUP"
	TemplateAcademic    TemplateType = "ACADEMIC"
	TemplateTech        TemplateType = "TECH"
	TemplateSwiss       TemplateType = "SWISS"
	TemplateBold        TemplateType = "BOLD"
	TemplateCompact     TemplateType = "COMPACT"
	TemplateArtistic    TemplateType = "ARTISTIC"
	TemplateInfographic TemplateType = "INFOGRAPHIC"
	TemplateMonochrome  TemplateType = "MONOCHROME"
	TemplateFocused     TemplateType = "FOCUSED"
	TemplateMagazine    TemplateType = "MAGAZINE"
	TemplateGlitch      TemplateType = "GLITCH"
)

// Templates lists every template identifier in display order.
func Templates() []TemplateType {
	return []TemplateType{
		TemplateExecutive, TemplateElegant, TemplateModern, TemplateCreative,
		TemplateMinimal, TemplateClassic, TemplateTimeline, TemplateGrid,
		TemplateStartup, TemplateAcademic, TemplateTech, TemplateSwiss,
		TemplateBold, TemplateCompact, TemplateArtistic, TemplateInfographic,
		TemplateMonochrome, TemplateFocused, TemplateMagazine, TemplateGlitch,
	}
}

// ParseTemplateType normalizes a template identifier. Unknown values map to
// TemplateExecutive rather than failing.
func ParseTemplateType(s string) TemplateType {
	t := TemplateType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Templates() {
		if t == known {
			return t
		}
	}
	return TemplateExecutive
}
