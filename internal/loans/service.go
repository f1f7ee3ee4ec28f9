// internal/loans/service.go
package loans

import "context"

// Service defines the interface for the loan lifecycle.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*View, error)
	List(ctx context.Context) ([]View, error)
	FindByID(ctx context.Context, id int64) (*View, error)
	Edit(ctx context.Context, id int64, p Patch) (*View, error)
	Delete(ctx context.Context, id int64) error
}
