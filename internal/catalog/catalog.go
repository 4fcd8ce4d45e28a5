// Package catalog holds an immutable, in-memory snapshot of glossary terms.
// It enforces the preconditions the linker relies on (ids and names unique,
// names compared case-insensitively) and imports terms from (name,
// definition) pair files.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/termlink/internal/domain"
	"github.com/heartmarshall/termlink/internal/linker"
)

// Catalog is a read-only term snapshot, safe for concurrent use.
type Catalog struct {
	terms  []domain.Term
	byID   map[uuid.UUID]int
	byName map[string]int

	linkerOnce sync.Once
	linker     *linker.Linker
}

// New builds a catalog from terms, keeping their order. Every problem is
// reported as a field of the returned *domain.ValidationError: blank names,
// nil ids, and duplicate ids or names.
func New(terms []domain.Term) (*Catalog, error) {
	c := &Catalog{
		terms:  make([]domain.Term, 0, len(terms)),
		byID:   make(map[uuid.UUID]int, len(terms)),
		byName: make(map[string]int, len(terms)),
	}

	var errs []domain.FieldError
	for i, t := range terms {
		field := fmt.Sprintf("terms[%d]", i)
		key := t.NameKey()
		before := len(errs)

		if key == "" {
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: "required"})
		} else if j, ok := c.byName[key]; ok {
			errs = append(errs, domain.FieldError{Field: field + ".name", Message: fmt.Sprintf("duplicate of terms[%d]", j)})
		}
		if t.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "required"})
		} else if j, ok := c.byID[t.ID]; ok {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: fmt.Sprintf("duplicate of terms[%d]", j)})
		}
		if len(errs) > before {
			continue
		}

		t.Name = strings.TrimSpace(t.Name)
		c.byID[t.ID] = i
		c.byName[key] = i
		c.terms = append(c.terms, t)
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return c, nil
}

// Len returns the number of terms.
func (c *Catalog) Len() int {
	return len(c.terms)
}

// Get returns the term with the given id.
func (c *Catalog) Get(id uuid.UUID) (domain.Term, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Term{}, fmt.Errorf("term %s: %w", id, domain.ErrNotFound)
	}
	return c.terms[i], nil
}

// FindByName returns the term whose name equals name, ignoring case and
// surrounding or repeated whitespace.
func (c *Catalog) FindByName(name string) (domain.Term, error) {
	i, ok := c.byName[domain.NormalizeText(name)]
	if !ok {
		return domain.Term{}, fmt.Errorf("term %q: %w", name, domain.ErrNotFound)
	}
	return c.terms[i], nil
}

// All returns a copy of the terms in catalog order.
func (c *Catalog) All() []domain.Term {
	out := make([]domain.Term, len(c.terms))
	copy(out, c.terms)
	return out
}

// Linker returns a linker over all terms, built on first use.
func (c *Catalog) Linker() *linker.Linker {
	c.linkerOnce.Do(func() {
		c.linker = linker.New(c.terms)
	})
	return c.linker
}
