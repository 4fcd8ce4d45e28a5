// Package linker turns term names found inside a definition into links to
// those terms.
//
// Matching is case-insensitive, whole-word and longest-name-first: when
// "Cell" and "Cell Division" both match at the same offset, "Cell Division"
// wins. A term is never linked from its own definition. The returned
// segments are substrings of the input, so joining their texts reproduces
// the definition byte for byte.
package linker

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/termlink/internal/domain"
)

// candidate is a term prepared for matching.
type candidate struct {
	id    uuid.UUID
	name  string
	key   string
	runes int
}

// Linker holds a catalog snapshot with candidates pre-sorted for matching.
// It is immutable after New and safe for concurrent use.
type Linker struct {
	// byFirst buckets candidates by the folded first rune of their name.
	// Every bucket is ordered longest name first.
	byFirst map[rune][]candidate
	size    int
}

// New prepares terms for linking. Terms with an empty name are ignored.
// The order of terms does not affect the results of Link.
func New(terms []domain.Term) *Linker {
	cands := make([]candidate, 0, len(terms))
	for _, t := range terms {
		if t.Name == "" {
			continue
		}
		cands = append(cands, candidate{
			id:    t.ID,
			name:  t.Name,
			key:   domain.NormalizeText(t.Name),
			runes: utf8.RuneCountInString(t.Name),
		})
	}

	slices.SortFunc(cands, compareCandidates)

	byFirst := make(map[rune][]candidate)
	for _, c := range cands {
		first, _ := utf8.DecodeRuneInString(c.name)
		k := foldKey(first)
		byFirst[k] = append(byFirst[k], c)
	}

	return &Linker{byFirst: byFirst, size: len(cands)}
}

// compareCandidates orders by name length descending. Names of equal length
// are ordered by normalized name, then by id, so that the winner never
// depends on catalog order.
func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(b.runes, a.runes); c != 0 {
		return c
	}
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.id.String(), b.id.String())
}

// Len returns the number of linkable terms.
func (l *Linker) Len() int {
	return l.size
}

// Link splits definition into plain and link segments. The term with id
// currentID is excluded from matching.
//
// An empty definition yields a single plain segment with empty text; the
// result is never empty.
func (l *Linker) Link(definition string, currentID uuid.UUID) []domain.Segment {
	segments := make([]domain.Segment, 0, 1)

	plainStart := 0
	prevWord := false
	pos := 0
	for pos < len(definition) {
		if !prevWord {
			if id, n := l.matchAt(definition, pos, currentID); n > 0 {
				if plainStart < pos {
					segments = append(segments, domain.PlainSegment(definition[plainStart:pos]))
				}
				segments = append(segments, domain.LinkSegment(definition[pos:pos+n], id))
				pos += n
				plainStart = pos

				last, _ := utf8.DecodeLastRuneInString(definition[:pos])
				prevWord = isWordRune(last)
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(definition[pos:])
		prevWord = isWordRune(r)
		pos += size
	}

	if plainStart < len(definition) || len(segments) == 0 {
		segments = append(segments, domain.PlainSegment(definition[plainStart:]))
	}
	return segments
}

// matchAt returns the id and byte length of the first candidate, in
// longest-first order, that matches as a whole word at pos. The caller has
// already checked the left boundary. n is 0 when nothing matches.
func (l *Linker) matchAt(s string, pos int, currentID uuid.UUID) (uuid.UUID, int) {
	r, _ := utf8.DecodeRuneInString(s[pos:])
	for _, c := range l.byFirst[foldKey(r)] {
		if c.id == currentID {
			continue
		}
		n := prefixFold(s[pos:], c.name)
		if n <= 0 {
			continue
		}
		if end := pos + n; end < len(s) {
			next, _ := utf8.DecodeRuneInString(s[end:])
			if isWordRune(next) {
				continue
			}
		}
		return c.id, n
	}
	return uuid.Nil, 0
}

// Link is a convenience wrapper around New(terms).Link. Callers linking many
// definitions against the same catalog should build a Linker once instead.
func Link(definition string, terms []domain.Term, currentID uuid.UUID) []domain.Segment {
	return New(terms).Link(definition, currentID)
}
