package glossary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/termlink/internal/domain"
)

// RenderDefinition links the definition of the given term against the rest
// of the catalog. The term never links to itself.
func (s *Service) RenderDefinition(ctx context.Context, input RenderInput) (*RenderedTerm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term, err := s.terms.Get(input.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}

	return s.render(ctx, term), nil
}

// RenderByName is RenderDefinition for a term looked up by name.
func (s *Service) RenderByName(ctx context.Context, input RenderByNameInput) (*RenderedTerm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term, err := s.terms.FindByName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("find term: %w", err)
	}

	return s.render(ctx, term), nil
}

// RenderText links arbitrary text against the catalog.
func (s *Service) RenderText(ctx context.Context, input RenderTextInput) ([]domain.Segment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.terms.Linker().Link(input.Text, input.ExcludeID), nil
}

func (s *Service) render(ctx context.Context, term domain.Term) *RenderedTerm {
	rendered := newRenderedTerm(term, s.terms.Linker().Link(term.Definition, term.ID))

	s.log.DebugContext(ctx, "definition rendered",
		slog.String("term_id", term.ID.String()),
		slog.Int("segments", len(rendered.Segments)),
		slog.Int("links", rendered.LinkCount),
	)

	return &rendered
}
