// internal/books/domain.go
package books

import (
	"errors"
	"strings"
)

const maxFieldLen = 40

// Book represents a library book. Available is controlled exclusively
// by the loan lifecycle; the update path never touches it. LoanID
// points at the loan currently holding the book, nil when available.
type Book struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Publisher string `json:"publisher" db:"publisher"`
	Available bool   `json:"available" db:"available"`
	LoanID    *int64 `json:"loanId,omitempty" db:"loan_id"`
}

// Patch carries a partial update of the editable fields. Nil fields
// were absent from the request; blank strings are ignored on merge.
type Patch struct {
	Title     *string `json:"title"`
	Publisher *string `json:"publisher"`
}

// Validate checks the constraints applied at creation time.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	if len(b.Title) > maxFieldLen {
		return errors.New("title must not exceed 40 characters")
	}
	if strings.TrimSpace(b.Publisher) == "" {
		return errors.New("publisher is required")
	}
	if len(b.Publisher) > maxFieldLen {
		return errors.New("publisher must not exceed 40 characters")
	}
	return nil
}

// Apply merges the patch into the book, overwriting only fields that
// are present and non-blank.
func (p Patch) Apply(b *Book) {
	mergeString(&b.Title, p.Title)
	mergeString(&b.Publisher, p.Publisher)
}

func mergeString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = *src
	}
}
