// Package isbn normalizes, validates and classifies ISBN-10 and ISBN-13
// identifiers.
//
// Every function in this package is total: malformed input is reported
// through return values (the empty string, false or KindInvalid) and never
// through an error or a panic.
package isbn

// Kind is the classification of an identifier.
type Kind string

const (
	// KindISBN10 is a well-formed ISBN-10 with a correct check digit.
	KindISBN10 Kind = "ISBN-10"
	// KindISBN13 is a well-formed ISBN-13 with a correct check digit.
	KindISBN13 Kind = "ISBN-13"
	// KindInvalid is anything else.
	KindInvalid Kind = "INVALID"
)

// String returns the classification label.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k names an actual ISBN type.
func (k Kind) Valid() bool {
	return k == KindISBN10 || k == KindISBN13
}

// Result is the full analysis of one input string.
type Result struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Kind       Kind   `json:"kind" yaml:"kind"`
}

// Valid reports whether the analysed input is an ISBN-10 or ISBN-13.
func (r Result) Valid() bool {
	return r.Kind.Valid()
}

// Analyze normalizes and classifies s.
func Analyze(s string) Result {
	return Result{
		Input:      s,
		Normalized: Normalize(s),
		Kind:       Detect(s),
	}
}
