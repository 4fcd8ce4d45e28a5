package glossary

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/termlink/internal/domain"
	"github.com/heartmarshall/termlink/internal/linker"
)

type termSource interface {
	Get(id uuid.UUID) (domain.Term, error)
	FindByName(name string) (domain.Term, error)
	All() []domain.Term
	Linker() *linker.Linker
}

const defaultWorkers = 4

// Service renders term definitions with cross-reference links.
type Service struct {
	terms   termSource
	workers int
	log     *slog.Logger
}

// NewService creates a new glossary service. workers bounds the concurrency
// of whole-catalog operations; values below 1 fall back to a default.
func NewService(log *slog.Logger, terms termSource, workers int) *Service {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Service{
		terms:   terms,
		workers: workers,
		log:     log.With("service", "glossary"),
	}
}
