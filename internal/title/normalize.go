package title

import (
	"strings"
	"unicode"
)

// Normalize converts a raw title into its canonical comparable form:
// lower-cased, with every non-alphanumeric rune replaced by a space and
// whitespace runs collapsed. The empty string maps to itself. Normalized
// titles are used for comparison only; the raw title is kept for display.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
