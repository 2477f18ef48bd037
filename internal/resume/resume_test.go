package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want TemplateType
	}{
		{"exact", "GLITCH", TemplateGlitch},
		{"lowercase", "glitch", TemplateGlitch},
		{"mixed case with spaces", "  Swiss ", TemplateSwiss},
		{"unknown", "BRUTALIST", TemplateExecutive},
		{"empty", "", TemplateExecutive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTemplateType(tt.in))
		})
	}
}

func TestTemplates_ClosedSet(t *testing.T) {
	all := Templates()
	require.Len(t, all, 20)

	seen := make(map[TemplateType]bool, len(all))
	for _, tpl := range all {
		assert.False(t, seen[tpl], "duplicate template id %s", tpl)
		seen[tpl] = true
		assert.Equal(t, tpl, ParseTemplateType(string(tpl)), "every listed id parses to itself")
	}
}

func TestValidFont(t *testing.T) {
	for _, f := range Fonts() {
		assert.True(t, ValidFont(f), "listed font %s must be valid", f)
	}
	assert.False(t, ValidFont(Font("comic-sans")))
	assert.False(t, ValidFont(Font("")))
}

func TestClone(t *testing.T) {
	doc := SampleDocument()

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.PersonalInfo.FullName = "Someone Else"
	clone.Skills[0] = "COBOL"
	if len(clone.Experience) > 0 {
		clone.Experience[0].Description[0] = "changed"
	}

	fresh := SampleDocument()
	assert.Equal(t, fresh.PersonalInfo.FullName, doc.PersonalInfo.FullName)
	assert.Equal(t, fresh.Skills[0], doc.Skills[0])
	if len(doc.Experience) > 0 {
		assert.Equal(t, fresh.Experience[0].Description[0], doc.Experience[0].Description[0])
	}
}

func TestClone_Nil(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.Clone())
}

func TestSampleDocument(t *testing.T) {
	doc := SampleDocument()

	assert.Equal(t, "Alex Rivera", doc.PersonalInfo.FullName)
	assert.NotEmpty(t, doc.Summary)
	assert.NotEmpty(t, doc.Experience)
	assert.NotEmpty(t, doc.Skills)
	require.NotNil(t, doc.CareerTools)
	assert.Contains(t, doc.CareerTools.CoverLetter, "Dear Hiring Manager")

	assert.NotSame(t, SampleDocument(), doc, "each call returns an independent copy")
}
