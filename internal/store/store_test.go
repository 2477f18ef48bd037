package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/internal/resume"
)

func testDocument() *resume.Document {
	return &resume.Document{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		Summary: "Backend engineer.",
		Skills:  []string{"Go", "PostgreSQL"},
	}
}

func TestNew_StartsWithSample(t *testing.T) {
	s := New(t.TempDir())

	doc := s.Document()
	assert.Equal(t, "Alex Rivera", doc.PersonalInfo.FullName)
	assert.Equal(t, resume.DefaultTheme(), s.Theme())
	assert.Equal(t, resume.TemplateExecutive, s.Template())
}

func TestLoad_MissingStateKeepsSample(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"))
	s.Load()

	assert.Equal(t, "Alex Rivera", s.Document().PersonalInfo.FullName)
}

func TestSetDocument_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	require.NoError(t, s.SetDocument(testDocument()))

	// A fresh store over the same directory rehydrates the saved document.
	reopened := New(dir)
	reopened.Load()

	doc := reopened.Document()
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, doc.Skills)
}

func TestSetDocument_NilRejected(t *testing.T) {
	s := New(t.TempDir())
	assert.Error(t, s.SetDocument(nil))
}

func TestDocument_ReturnsCopy(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SetDocument(testDocument()))

	first := s.Document()
	first.PersonalInfo.FullName = "Mutated Name"
	first.Skills[0] = "COBOL"

	second := s.Document()
	assert.Equal(t, "Jane Doe", second.PersonalInfo.FullName)
	assert.Equal(t, "Go", second.Skills[0])
}

func TestLoad_CorruptDocumentFallsBackToSample(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentFileName), []byte("{not json"), 0o644))

	s := New(dir)
	s.Load()

	assert.Equal(t, "Alex Rivera", s.Document().PersonalInfo.FullName)
}

func TestLoad_DocumentWithoutNameIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentFileName), []byte(`{"summary": "nameless"}`), 0o644))

	s := New(dir)
	s.Load()

	assert.Equal(t, "Alex Rivera", s.Document().PersonalInfo.FullName)
}

func TestPreferences_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	require.NoError(t, s.SetTheme(resume.ThemeConfig{Color: "#b91c1c", Font: resume.FontSerif}))
	require.NoError(t, s.SetTemplate(resume.TemplateGlitch))

	reopened := New(dir)
	reopened.Load()

	assert.Equal(t, resume.ThemeConfig{Color: "#b91c1c", Font: resume.FontSerif}, reopened.Theme())
	assert.Equal(t, resume.TemplateGlitch, reopened.Template())
}

func TestSetTheme_Invalid(t *testing.T) {
	s := New(t.TempDir())

	assert.Error(t, s.SetTheme(resume.ThemeConfig{Color: "#b91c1c", Font: "comic-sans"}))
	assert.Error(t, s.SetTheme(resume.ThemeConfig{Color: "", Font: resume.FontSans}))
	assert.Equal(t, resume.DefaultTheme(), s.Theme(), "a rejected update leaves the theme untouched")
}

func TestSetTemplate_UnknownResolvesToDefault(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SetTemplate(resume.TemplateType("Brutalist")))

	assert.Equal(t, resume.TemplateExecutive, s.Template())
}

func TestLoad_CorruptPreferencesIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefsFileName), []byte("broken"), 0o644))

	s := New(dir)
	s.Load()

	assert.Equal(t, resume.DefaultTheme(), s.Theme())
	assert.Equal(t, resume.TemplateExecutive, s.Template())
}

func TestGenerationBusyFlag(t *testing.T) {
	s := New(t.TempDir())

	busy, status := s.Busy()
	assert.False(t, busy)
	assert.Empty(t, status)

	require.NoError(t, s.BeginGeneration("SCANNING REPOSITORIES"))

	busy, status = s.Busy()
	assert.True(t, busy)
	assert.Equal(t, "SCANNING REPOSITORIES", status)

	var inflight *ErrGenerationInFlight
	err := s.BeginGeneration("SCANNING REPOSITORIES")
	require.ErrorAs(t, err, &inflight)

	s.SetStatus("ANALYZING CAREER DATA")
	_, status = s.Busy()
	assert.Equal(t, "ANALYZING CAREER DATA", status)

	s.EndGeneration()
	busy, status = s.Busy()
	assert.False(t, busy)
	assert.Empty(t, status)

	assert.NoError(t, s.BeginGeneration("SCANNING REPOSITORIES"), "the flag is reusable after EndGeneration")
}

func TestWriteFileAtomic_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	require.NoError(t, s.SetDocument(testDocument()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".state-", "temp files are renamed away")
	}
}
