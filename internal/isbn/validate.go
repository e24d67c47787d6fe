package isbn

// IsValidISBN10 reports whether s normalizes to a ten character identifier
// whose weighted sum (weights 10 down to 1, 'X' worth 10) is divisible by 11.
func IsValidISBN10(s string) bool {
	s = Normalize(s)
	if len(s) != 10 {
		return false
	}

	total := 0
	for i := 0; i < len(s); i++ {
		var value int
		switch c := s[i]; {
		case c == 'X':
			if i != 9 {
				return false
			}
			value = 10
		case isDigit(c):
			value = int(c - '0')
		default:
			return false
		}
		total += (10 - i) * value
	}

	return total%11 == 0
}

// IsValidISBN13 reports whether s normalizes to thirteen digits whose
// alternating 1/3 weighted sum is divisible by 10.
func IsValidISBN13(s string) bool {
	s = Normalize(s)
	if len(s) != 13 || !allDigits(s) {
		return false
	}

	total := 0
	for i := 0; i < len(s); i++ {
		digit := int(s[i] - '0')
		if i%2 == 0 {
			total += digit
		} else {
			total += digit * 3
		}
	}

	return total%10 == 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
