// internal/users/service.go
package users

import "context"

// Service defines the interface for the users service.
type Service interface {
	Create(ctx context.Context, u User) (*User, error)
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Edit(ctx context.Context, id int64, p Patch) (*User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
