// Package phone formats US-style phone numbers as they are typed.
package phone

import (
	"strings"
	"unicode"
)

// FormattedLen is the length of a complete number: "(555) 123-4567".
const FormattedLen = 14

const maxDigits = 10

// Digits strips everything but ASCII digits from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders raw input as a partial or complete phone number:
// fewer than 3 digits are returned bare, 3 to 5 digits become "(555) 12",
// and 6 or more become "(555) 123-4567". Digits past the tenth are dropped.
func Format(raw string) string {
	d := Digits(raw)
	if len(d) > maxDigits {
		d = d[:maxDigits]
	}
	switch {
	case len(d) >= 6:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) >= 3:
		return "(" + d[:3] + ") " + d[3:]
	default:
		return d
	}
}

// IsComplete reports whether formatted is a full ten digit number.
func IsComplete(formatted string) bool {
	return len(formatted) == FormattedLen
}
