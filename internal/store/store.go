// Package store holds the process-wide resume state: the current document,
// presentation preferences, and the generation busy flag. The document is
// persisted whole to a versioned state file on every mutation and rehydrated
// at startup.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"resumeai/internal/resume"
)

// DocumentFileName is the versioned state key for the resume document. A
// version bump abandons the old file; there is no migration.
const DocumentFileName = "resume_v4.json"

// prefsFileName persists template and theme selections. Session-local
// convenience, not part of the document contract.
const prefsFileName = "preferences_v1.json"

// ErrGenerationInFlight is returned when a generation is requested while
// another one is outstanding. Concurrent requests are rejected, not queued
// or cancelled.
type ErrGenerationInFlight struct{}

func (e *ErrGenerationInFlight) Error() string {
	return "a generation is already in progress"
}

// preferences is the persisted shape of the presentation state.
type preferences struct {
	Theme    resume.ThemeConfig  `json:"theme"`
	Template resume.TemplateType `json:"template"`
}

// Store is the single owner of mutable application state. All access goes
// through its methods; documents are handed out as copies.
type Store struct {
	mu  sync.RWMutex
	dir string

	doc      *resume.Document
	theme    resume.ThemeConfig
	template resume.TemplateType

	busy   bool
	status string
}

// New creates a store rooted at dir. State starts from the bundled sample
// until Load is called.
func New(dir string) *Store {
	return &Store{
		dir:      dir,
		doc:      resume.SampleDocument(),
		theme:    resume.DefaultTheme(),
		template: resume.TemplateExecutive,
	}
}

// Load rehydrates state from the versioned files. A missing or corrupt
// document file is never fatal: it is treated as no saved state and the
// bundled sample remains in place.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, err := os.ReadFile(filepath.Join(s.dir, DocumentFileName)); err == nil {
		var doc resume.Document
		if err := json.Unmarshal(raw, &doc); err == nil && doc.PersonalInfo.FullName != "" {
			s.doc = &doc
		}
	}

	if raw, err := os.ReadFile(filepath.Join(s.dir, prefsFileName)); err == nil {
		var prefs preferences
		if err := json.Unmarshal(raw, &prefs); err == nil {
			if resume.ValidFont(prefs.Theme.Font) && prefs.Theme.Color != "" {
				s.theme = prefs.Theme
			}
			s.template = resume.ParseTemplateType(string(prefs.Template))
		}
	}
}

// Document returns a copy of the current document.
func (s *Store) Document() *resume.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// SetDocument replaces the document wholesale and persists it. This is the
// single mutation entry point: there are no partial merges.
func (s *Store) SetDocument(next *resume.Document) error {
	if next == nil {
		return fmt.Errorf("store: document must not be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = next.Clone()
	return s.persistDocument()
}

// Theme returns the current presentation theme.
func (s *Store) Theme() resume.ThemeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme updates the accent color and font family.
func (s *Store) SetTheme(theme resume.ThemeConfig) error {
	if !resume.ValidFont(theme.Font) {
		return fmt.Errorf("store: unknown font %q", theme.Font)
	}
	if theme.Color == "" {
		return fmt.Errorf("store: theme color must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.persistPreferences()
}

// Template returns the selected template identifier.
func (s *Store) Template() resume.TemplateType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template
}

// SetTemplate updates the selected template. Unknown identifiers resolve to
// the default variant.
func (s *Store) SetTemplate(t resume.TemplateType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = resume.ParseTemplateType(string(t))
	return s.persistPreferences()
}

// BeginGeneration marks a generation as outstanding. A second call before
// EndGeneration fails with ErrGenerationInFlight.
func (s *Store) BeginGeneration(status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return &ErrGenerationInFlight{}
	}
	s.busy = true
	s.status = status
	return nil
}

// SetStatus updates the human-readable phase shown while a generation is
// outstanding.
func (s *Store) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// EndGeneration clears the busy flag.
func (s *Store) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	s.status = ""
}

// Busy reports whether a generation is outstanding and its current phase.
func (s *Store) Busy() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy, s.status
}

// persistDocument writes the whole document atomically. Callers hold the
// lock.
func (s *Store) persistDocument() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to serialize document: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.dir, DocumentFileName), raw)
}

// persistPreferences writes the presentation state. Callers hold the lock.
func (s *Store) persistPreferences() error {
	raw, err := json.MarshalIndent(preferences{Theme: s.theme, Template: s.template}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: failed to serialize preferences: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.dir, prefsFileName), raw)
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never corrupts the previous state.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("store: failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".state-*")
	if err != nil {
		return fmt.Errorf("store: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: failed to flush state: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store: failed to replace state file: %w", err)
	}
	return nil
}
