// Package input collects and normalizes the heterogeneous raw sources (free
// text, an uploaded file, selected repositories, a target job description)
// into the one combined payload a generation request is built from.
package input

import (
	"context"
	"encoding/base64"
	"strings"

	"resumeai/internal/github"
)

// Accepted upload mime types. Anything else is rejected before it reaches
// the pipeline.
const (
	MimePDF  = "application/pdf"
	MimeText = "text/plain"
)

// FilePayload is an opaque non-text upload forwarded to the generation
// client as-is. Data is base64 encoded.
type FilePayload struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// CombinedInput is the unified payload built from all available sources.
// At least one of Text, File, or GithubData must be present; a job
// description alone is not a usable source.
type CombinedInput struct {
	Text           string       `json:"text,omitempty"`
	File           *FilePayload `json:"file,omitempty"`
	GithubData     string       `json:"githubData,omitempty"`
	JobDescription string       `json:"jobDescription,omitempty"`
}

// HasUsableSource reports whether generation can be attempted from this
// input.
func (c *CombinedInput) HasUsableSource() bool {
	return strings.TrimSpace(c.Text) != "" || c.File != nil || c.GithubData != ""
}

// UploadedFile is a raw upload before normalization.
type UploadedFile struct {
	Name     string
	MimeType string
	Content  []byte
}

// RepoSelection names the repositories the user picked for aggregation.
type RepoSelection struct {
	Username string
	Repos    []github.Repo
}

// Sources are the independent optional inputs handed to Aggregate.
type Sources struct {
	Text           string
	JobDescription string
	File           *UploadedFile
	Github         *RepoSelection
}

// ReadmeFetcher fetches readmes for selected repositories, settling every
// fetch rather than failing on the first error.
type ReadmeFetcher interface {
	FetchReadmes(ctx context.Context, username string, repos []github.Repo) []github.ReadmeResult
}

// ValidateFileType rejects uploads other than PDF and plain text. It runs at
// the file-input boundary, before the file is held as a pending source.
func ValidateFileType(mimeType string) error {
	if mimeType == MimePDF || mimeType == MimeText {
		return nil
	}
	return &ValidationError{Message: "please upload a PDF or TXT file"}
}

// Aggregate builds the combined input from whatever sources are present.
//
// Plain-text uploads are decoded and folded into the free-text field with a
// blank-line separator; PDFs pass through as an opaque mime-type/base64 pair.
// Readme fetches for selected repositories run concurrently and degrade per
// repository. Fails with a ValidationError when no usable source remains.
func Aggregate(ctx context.Context, src Sources, fetcher ReadmeFetcher) (*CombinedInput, error) {
	combined := &CombinedInput{}

	if jd := strings.TrimSpace(src.JobDescription); jd != "" {
		combined.JobDescription = jd
	}

	if src.Github != nil && len(src.Github.Repos) > 0 {
		results := fetcher.FetchReadmes(ctx, src.Github.Username, src.Github.Repos)
		blob, err := github.BuildBlob(src.Github.Username, results)
		if err != nil {
			return nil, &ValidationError{Message: "failed to serialize repository data: " + err.Error()}
		}
		combined.GithubData = blob
	}

	if src.File != nil {
		if err := ValidateFileType(src.File.MimeType); err != nil {
			return nil, err
		}
		switch src.File.MimeType {
		case MimeText:
			appendText(combined, string(src.File.Content))
		case MimePDF:
			combined.File = &FilePayload{
				MimeType: src.File.MimeType,
				Data:     base64.StdEncoding.EncodeToString(src.File.Content),
			}
		}
	}

	if text := strings.TrimSpace(src.Text); text != "" {
		appendText(combined, text)
	}

	if !combined.HasUsableSource() {
		return nil, &ValidationError{Message: "please provide at least one input source"}
	}

	return combined, nil
}

// appendText folds more text into the combined free-text field with a
// blank-line separator.
func appendText(c *CombinedInput, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if c.Text == "" {
		c.Text = text
		return
	}
	c.Text = c.Text + "\n\n" + text
}
