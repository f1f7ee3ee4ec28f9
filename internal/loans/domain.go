// internal/loans/domain.go
package loans

import (
	"errors"

	"biblioteca/internal/books"
)

// Loan binds one user to a set of books for a bounded date range. The
// book set is fixed at creation; only the dates can be edited later.
// UserName and Books are resolved by the repository on reads so the
// projection never has to fetch.
type Loan struct {
	ID        int64
	StartDate Date
	DueDate   Date
	UserID    int64
	UserName  string
	Books     []books.Book
}

// CreateRequest carries the data needed to register a loan.
type CreateRequest struct {
	StartDate *Date   `json:"startDate"`
	DueDate   *Date   `json:"dueDate"`
	UserID    int64   `json:"userId"`
	BookIDs   []int64 `json:"bookIds"`
}

// Patch carries a partial update of the loan dates. Nil fields were
// absent from the request and leave the stored value untouched.
type Patch struct {
	StartDate *Date `json:"startDate"`
	DueDate   *Date `json:"dueDate"`
}

// Validate checks the date constraints against today. The due date is
// compared to the current date, not to the start date, so a due date
// earlier than the start date still passes.
func (r CreateRequest) Validate(today Date) error {
	if r.StartDate == nil || r.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if r.StartDate.Before(today) {
		return errors.New("start date must be today or later")
	}
	if r.DueDate == nil || r.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	if !r.DueDate.After(today) {
		return errors.New("due date must be in the future")
	}
	return nil
}

// Apply merges the patch into the loan, overwriting only present
// fields. Dates are not re-validated on edit.
func (p Patch) Apply(l *Loan) {
	if p.StartDate != nil {
		l.StartDate = *p.StartDate
	}
	if p.DueDate != nil {
		l.DueDate = *p.DueDate
	}
}
