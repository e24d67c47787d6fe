package isbn

import "errors"

var (
	// ErrInvalidISBN is returned when the input is neither a valid ISBN-10 nor ISBN-13.
	ErrInvalidISBN = errors.New("invalid ISBN")

	// ErrNotConvertible is returned when a valid ISBN-13 has no ISBN-10 form
	// (only the 978 prefix maps back to ISBN-10).
	ErrNotConvertible = errors.New("ISBN-13 has no ISBN-10 equivalent")
)
