package input

import "fmt"

// ValidationError indicates the user-supplied sources cannot start a
// generation: no usable source, or an unsupported file type. The user must
// fix the input; nothing is retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation: %s", e.Message)
}
