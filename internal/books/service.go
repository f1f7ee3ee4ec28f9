// internal/books/service.go
package books

import "context"

// Service defines the interface for the books service.
type Service interface {
	Create(ctx context.Context, b Book) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (*Book, error)
	Edit(ctx context.Context, id int64, p Patch) (*Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
