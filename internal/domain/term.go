package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Term is a named glossary entry. Names are unique case-insensitively
// (see NormalizeText); the catalog that owns the terms enforces it.
type Term struct {
	ID         uuid.UUID `json:"id"         yaml:"id"`
	Name       string    `json:"name"       yaml:"name"`
	Definition string    `json:"definition" yaml:"definition"`
}

// NameKey returns the case-insensitive comparison key of the term name.
func (t Term) NameKey() string {
	return NormalizeText(t.Name)
}

// Segment is a contiguous run of a definition, either plain text or a link
// to another term. TermID is set if and only if IsLink is true.
type Segment struct {
	Text   string     `json:"text"`
	IsLink bool       `json:"is_link"`
	TermID *uuid.UUID `json:"term_id,omitempty"`
}

// PlainSegment returns a non-link segment.
func PlainSegment(text string) Segment {
	return Segment{Text: text}
}

// LinkSegment returns a segment linking text to the term with the given id.
func LinkSegment(text string, termID uuid.UUID) Segment {
	return Segment{Text: text, IsLink: true, TermID: &termID}
}

// JoinSegments concatenates segment texts in order. For linker output this
// reproduces the original definition.
func JoinSegments(segments []Segment) string {
	n := 0
	for _, s := range segments {
		n += len(s.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// LinkedTermIDs returns the distinct term ids linked from segments, in order of
// first appearance.
func LinkedTermIDs(segments []Segment) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, s := range segments {
		if !s.IsLink || s.TermID == nil {
			continue
		}
		if _, ok := seen[*s.TermID]; ok {
			continue
		}
		seen[*s.TermID] = struct{}{}
		ids = append(ids, *s.TermID)
	}
	return ids
}
