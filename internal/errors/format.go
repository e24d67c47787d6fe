package errors

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedFormatError represents an output format the CLI cannot render
type UnsupportedFormatError struct {
	Format    string
	Supported []string
}

func (e *UnsupportedFormatError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported output format %q", e.Format)
	}
	return fmt.Sprintf("unsupported output format %q (supported: %s)", e.Format, strings.Join(e.Supported, ", "))
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(format string, supported ...string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Format: format, Supported: supported}
}

// IsUnsupportedFormatError reports whether err is an UnsupportedFormatError (even when wrapped).
func IsUnsupportedFormatError(err error) bool {
	var formatErr *UnsupportedFormatError
	return errors.As(err, &formatErr)
}
