// internal/books/repository.go
package books

import "context"

// Repository is the persistence contract for books. Absence is
// reported as an apperr not-found error, never as a nil record.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	// GetByIDs resolves the subset of ids that exist, in id order.
	GetByIDs(ctx context.Context, ids []int64) ([]Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id int64) (bool, error)
}
