package domain

import (
	"strings"
	"unicode"
)

// NormalizeText produces the comparison key for term names:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace into a single space
//
// Two names with the same key are the same term as far as the catalog is concerned.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
