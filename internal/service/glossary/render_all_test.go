package glossary

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/termlink/internal/domain"
)

func TestRenderAll_CatalogOrder(t *testing.T) {
	t.Parallel()

	svc := NewService(discardLogger(), sourceOver(cellTerm, divisionTerm, mitosisTerm, geneTerm), 3)

	got, err := svc.RenderAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)

	for i, want := range []domain.Term{cellTerm, divisionTerm, mitosisTerm, geneTerm} {
		assert.Equal(t, want.ID, got[i].Term.ID)
		assert.Equal(t, want.Definition, domain.JoinSegments(got[i].Segments))
	}
	assert.Equal(t, 0, got[0].LinkCount)
	assert.Equal(t, 1, got[2].LinkCount)
}

func TestRenderAll_ManyTermsMatchesSequential(t *testing.T) {
	t.Parallel()

	terms := make([]domain.Term, 0, 200)
	for i := 0; i < 200; i++ {
		terms = append(terms, domain.Term{
			ID:         uuid.New(),
			Name:       fmt.Sprintf("term%d", i),
			Definition: fmt.Sprintf("see term%d and term%d", (i+1)%200, (i+7)%200),
		})
	}
	src := sourceOver(terms...)
	svc := NewService(discardLogger(), src, 8)

	got, err := svc.RenderAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, len(terms))

	l := src.Linker()
	for i, term := range terms {
		assert.Equal(t, l.Link(term.Definition, term.ID), got[i].Segments, "term %d", i)
		assert.Equal(t, 2, got[i].LinkCount, "term %d", i)
	}
}

func TestRenderAll_Empty(t *testing.T) {
	t.Parallel()

	svc := NewService(discardLogger(), sourceOver(), 2)

	got, err := svc.RenderAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRenderAll_CancelledContext(t *testing.T) {
	t.Parallel()

	svc := NewService(discardLogger(), sourceOver(cellTerm, geneTerm), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.RenderAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBacklinks(t *testing.T) {
	t.Parallel()

	svc := NewService(discardLogger(), sourceOver(cellTerm, divisionTerm, mitosisTerm, geneTerm), 2)

	got, err := svc.Backlinks(context.Background(), RenderInput{TermID: cellTerm.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, divisionTerm.ID, got[0].ID)

	got, err = svc.Backlinks(context.Background(), RenderInput{TermID: geneTerm.ID})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBacklinks_Errors(t *testing.T) {
	t.Parallel()

	svc := NewService(discardLogger(), sourceOver(cellTerm), 2)

	_, err := svc.Backlinks(context.Background(), RenderInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Backlinks(context.Background(), RenderInput{TermID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
