package glossary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/termlink/internal/domain"
)

// MaxTextLength bounds free text passed to RenderText.
const MaxTextLength = 64 * 1024

// RenderInput identifies the term whose definition is rendered.
type RenderInput struct {
	TermID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RenderInput) Validate() error {
	if i.TermID == uuid.Nil {
		return domain.NewValidationError("term_id", "required")
	}
	return nil
}

// RenderByNameInput identifies a term by name, case-insensitively.
type RenderByNameInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i RenderByNameInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// RenderTextInput holds free text to link against the catalog, such as a
// definition that is still being edited. ExcludeID is the term the text
// belongs to, or uuid.Nil for none.
type RenderTextInput struct {
	Text      string
	ExcludeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RenderTextInput) Validate() error {
	if len(i.Text) > MaxTextLength {
		return domain.NewValidationError("text", "too long")
	}
	return nil
}
