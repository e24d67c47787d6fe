package errors

import (
	stdErrors "errors"
	"fmt"
)

// InputReadError represents a failure while reading identifiers from an input stream.
type InputReadError struct {
	Line int // last line read successfully, 0 if none
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("reading input after line %d: %v", e.Line, e.Err)
}

func (e *InputReadError) Unwrap() error {
	return e.Err
}

// NewInputReadError wraps err with the position where reading stopped
func NewInputReadError(line int, err error) *InputReadError {
	return &InputReadError{Line: line, Err: err}
}

// IsInputReadError checks if error is an InputReadError
func IsInputReadError(err error) bool {
	var readErr *InputReadError
	return stdErrors.As(err, &readErr)
}
