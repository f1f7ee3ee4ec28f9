// internal/users/repository.go
package users

import "context"

// Repository is the persistence contract for users. Absence is reported
// as an apperr not-found error, never as a nil record.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
