// Package genreq turns a combined input into the instruction/content payload
// sent to the generative model.
package genreq

import (
	"resumeai/internal/input"
	"resumeai/internal/prompts"
)

// Source labels prefixed to content segments. Segment order is significant:
// the job description leads so it frames everything that follows when
// sources conflict.
const (
	labelJobDescription = "[TARGET JOB DESCRIPTION]\n"
	labelGithubData     = "[SOURCE: GITHUB DATA]\n"
	labelUserText       = "[SOURCE: USER TEXT INPUT]\n"
	labelDocument       = "[SOURCE: UPLOADED DOCUMENT]\n"
)

// Segment is one ordered piece of request content: either text or an opaque
// inline file payload.
type Segment struct {
	Text string
	File *input.FilePayload
}

// Request is the assembled model request: the system instruction plus the
// ordered content segments.
type Request struct {
	SystemInstruction string
	Segments          []Segment
}

// EmptyRequestError indicates the segment list came out empty. Aggregation
// already guarantees a usable source, so this is a defensive double-check.
type EmptyRequestError struct{}

func (e *EmptyRequestError) Error() string {
	return "generation request has no content segments"
}

// Build assembles the model request from a combined input.
//
// The system instruction is the fixed contract-and-content rule set; when a
// job description is present a targeted-tailoring block is appended. Content
// segments are ordered: job description, repository data, free text, file
// payload, then the closing instruction requesting the complete document.
func Build(in *input.CombinedInput) (*Request, error) {
	// Mirrors the aggregator's invariant: a job description alone is framing,
	// not content.
	if in == nil || !in.HasUsableSource() {
		return nil, &EmptyRequestError{}
	}

	system := prompts.MustGet("generation.json", "system_base")
	if in.JobDescription != "" {
		system += "\n\n" + prompts.MustGet("generation.json", "tailoring_block")
	}

	var segments []Segment
	if in.JobDescription != "" {
		segments = append(segments, Segment{Text: labelJobDescription + in.JobDescription})
	}
	if in.GithubData != "" {
		segments = append(segments, Segment{Text: labelGithubData + in.GithubData})
	}
	if in.Text != "" {
		segments = append(segments, Segment{Text: labelUserText + in.Text})
	}
	if in.File != nil {
		segments = append(segments, Segment{Text: labelDocument})
		segments = append(segments, Segment{File: in.File})
	}

	if len(segments) == 0 {
		return nil, &EmptyRequestError{}
	}

	segments = append(segments, Segment{Text: prompts.MustGet("generation.json", "closing_instruction")})

	return &Request{
		SystemInstruction: system,
		Segments:          segments,
	}, nil
}
