package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/termlink/internal/domain"
)

// RenderAll renders every term of the catalog, in catalog order. Definitions
// are linked concurrently, at most s.workers at a time.
func (s *Service) RenderAll(ctx context.Context) ([]RenderedTerm, error) {
	terms := s.terms.All()
	l := s.terms.Linker()
	out := make([]RenderedTerm, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, term := range terms {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = newRenderedTerm(term, l.Link(term.Definition, term.ID))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render all: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render all: %w", err)
	}

	links := 0
	for _, r := range out {
		links += r.LinkCount
	}
	s.log.DebugContext(ctx, "catalog rendered",
		slog.Int("terms", len(out)),
		slog.Int("links", links),
		slog.Int("workers", s.workers),
	)

	return out, nil
}

// Backlinks returns the terms whose definitions link to the given term, in
// catalog order.
func (s *Service) Backlinks(ctx context.Context, input RenderInput) ([]domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.terms.Get(input.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	rendered, err := s.RenderAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Term, 0)
	for _, r := range rendered {
		if slices.Contains(domain.LinkedTermIDs(r.Segments), target.ID) {
			result = append(result, r.Term)
		}
	}
	return result, nil
}
