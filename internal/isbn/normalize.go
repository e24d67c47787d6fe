package isbn

import (
	"fmt"
	"reflect"
	"strings"
)

var separatorStripper = strings.NewReplacer(" ", "", "-", "")

// Normalize strips spaces and hyphens from s, upper-cases it and checks that
// only digits and a trailing 'X' remain.
//
// The empty string is returned for any input that cannot be an ISBN
// candidate. Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToUpper(separatorStripper.Replace(s))
	if s == "" {
		return ""
	}

	last := len(s) - 1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
		case c == 'X':
			// X is only ever a check character
			if i != last {
				return ""
			}
		default:
			return ""
		}
	}

	return s
}

// FromValue maps an arbitrary value onto the text Normalize expects.
// Strings, non-nil string pointers, byte slices and fmt.Stringers yield their
// text; nil and every other type yield the empty sentinel.
func FromValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case []byte:
		return string(val)
	case fmt.Stringer:
		if isNilPointer(val) {
			return ""
		}
		return val.String()
	default:
		return ""
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
