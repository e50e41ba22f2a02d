package search

import (
	"strings"
	"unicode"
)

// NormalizeQuery lowercases input, keeps letters, digits and the symbols
// that appear in technology names (+ # . /), and collapses whitespace.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune("+#./", r):
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r) || r == ',':
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
