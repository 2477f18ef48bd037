package generate

import "fmt"

// ServiceError represents a network or service failure from the generative
// API. Callers may retry at their discretion; the client never retries on
// its own.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the service answered with no text at all.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "generation returned an empty response"
}

// ParseError indicates the response text was not valid JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse generation response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse generation response: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
