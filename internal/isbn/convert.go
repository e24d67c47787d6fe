package isbn

import "strings"

const booklandPrefix = "978"

// CheckDigit10 computes the ISBN-10 check character for the first nine
// digits of an identifier. ok is false unless first9 is exactly nine digits.
func CheckDigit10(first9 string) (check byte, ok bool) {
	if len(first9) != 9 || !allDigits(first9) {
		return 0, false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += (10 - i) * int(first9[i]-'0')
	}

	switch d := (11 - sum%11) % 11; d {
	case 10:
		return 'X', true
	default:
		return byte('0' + d), true
	}
}

// CheckDigit13 computes the ISBN-13 check digit for the first twelve digits.
func CheckDigit13(first12 string) (check byte, ok bool) {
	if len(first12) != 12 || !allDigits(first12) {
		return 0, false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := int(first12[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	return byte('0' + (10-sum%10)%10), true
}

// ToISBN13 returns the normalized ISBN-13 form of s. ISBN-10 input is moved
// into the 978 prefix range with a recomputed check digit.
func ToISBN13(s string) (string, error) {
	normalized := Normalize(s)
	switch Detect(normalized) {
	case KindISBN13:
		return normalized, nil
	case KindISBN10:
		base := booklandPrefix + normalized[:9]
		check, _ := CheckDigit13(base)
		return base + string(check), nil
	default:
		return "", ErrInvalidISBN
	}
}

// ToISBN10 returns the normalized ISBN-10 form of s. Only 978-prefixed
// ISBN-13 identifiers can be converted; other valid ISBN-13 input yields
// ErrNotConvertible.
func ToISBN10(s string) (string, error) {
	normalized := Normalize(s)
	switch Detect(normalized) {
	case KindISBN10:
		return normalized, nil
	case KindISBN13:
		if !strings.HasPrefix(normalized, booklandPrefix) {
			return "", ErrNotConvertible
		}
		base := normalized[3:12]
		check, _ := CheckDigit10(base)
		return base + string(check), nil
	default:
		return "", ErrInvalidISBN
	}
}
