package glossary

import (
	"github.com/heartmarshall/termlink/internal/domain"
)

// RenderedTerm is a term together with its linked definition.
type RenderedTerm struct {
	Term      domain.Term      `json:"term"`
	Segments  []domain.Segment `json:"segments"`
	LinkCount int              `json:"link_count"`
}

func newRenderedTerm(term domain.Term, segments []domain.Segment) RenderedTerm {
	links := 0
	for _, s := range segments {
		if s.IsLink {
			links++
		}
	}
	return RenderedTerm{Term: term, Segments: segments, LinkCount: links}
}
