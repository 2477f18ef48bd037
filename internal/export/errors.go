package export

import "fmt"

// ConversionError represents a failure producing a downloadable artifact
// from rendered HTML. Fallback names the export format the caller should
// suggest instead.
type ConversionError struct {
	Format   string
	Fallback string
	Cause    error
}

func (e *ConversionError) Error() string {
	if e.Fallback != "" {
		return fmt.Sprintf("%s conversion failed (try %s export): %v", e.Format, e.Fallback, e.Cause)
	}
	return fmt.Sprintf("%s conversion failed: %v", e.Format, e.Cause)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
