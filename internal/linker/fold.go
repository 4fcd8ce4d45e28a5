package linker

import (
	"unicode"
	"unicode/utf8"
)

// isWordRune reports whether r is a word constituent: a letter, a decimal
// digit, an underscore, or a combining mark. Marks count as word runes so
// that a decomposed "café" is not split after "cafe".
func isWordRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '_' ||
			('a' <= r && r <= 'z') ||
			('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9')
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// equalFold reports whether a and b are equal under Unicode simple case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	r := unicode.SimpleFold(a)
	for r != a && r != b {
		r = unicode.SimpleFold(r)
	}
	return r == b
}

// foldKey maps r to the smallest rune of its case-folding orbit, so that all
// case variants of a rune share one key.
func foldKey(r rune) rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r
		}
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}
	lowest := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lowest {
			lowest = f
		}
	}
	return lowest
}

// prefixFold returns the number of bytes of s that match name rune by rune
// under case folding, or -1 if s does not start with name. The byte count
// refers to s, which may differ from len(name) when folded runes have
// different UTF-8 widths.
func prefixFold(s, name string) int {
	i := 0
	for _, nr := range name {
		if i >= len(s) {
			return -1
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !equalFold(sr, nr) {
			return -1
		}
		i += size
	}
	return i
}
