// internal/loans/repository.go
package loans

import "context"

// Repository is the persistence contract for loans.
//
// CreateWithBooks and DeleteAndRelease are the two multi-row atomic
// units of the system: the loan row and the availability flags of its
// books change together or not at all. CreateWithBooks re-checks user
// existence and book availability inside the same transaction that
// writes, and reports failures as apperr errors: NotFound when the
// user is missing, BadRequest when no book id resolves, Conflict when
// a resolved book is already held. DeleteAndRelease releases every
// associated book before the loan row disappears.
type Repository interface {
	CreateWithBooks(ctx context.Context, l *Loan, bookIDs []int64) (*Loan, error)
	GetByID(ctx context.Context, id int64) (*Loan, error)
	List(ctx context.Context) ([]*Loan, error)
	UpdateDates(ctx context.Context, l *Loan) error
	DeleteAndRelease(ctx context.Context, id int64) error
}
