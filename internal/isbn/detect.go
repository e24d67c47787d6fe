package isbn

// Detect classifies s as KindISBN10, KindISBN13 or KindInvalid.
//
// The input is normalized once and dispatched on its length; a candidate
// of any other length is always invalid.
func Detect(s string) Kind {
	normalized := Normalize(s)
	if len(normalized) == 10 && IsValidISBN10(normalized) {
		return KindISBN10
	}
	if len(normalized) == 13 && IsValidISBN13(normalized) {
		return KindISBN13
	}
	return KindInvalid
}

// DetectValue is Detect for values of unknown type, see FromValue.
func DetectValue(v any) Kind {
	return Detect(FromValue(v))
}
