// internal/users/implementation.go
package users

import (
	"context"

	"github.com/sirupsen/logrus"

	"biblioteca/internal/apperr"
)

// service implements the Service interface.
type service struct {
	repo Repository
	log  *logrus.Logger
}

// NewService creates a new users service instance.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Create(ctx context.Context, u User) (*User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, &u)
	if err != nil {
		return nil, err
	}
	s.log.WithField("user_id", created.ID).Info("user created")
	return created, nil
}

// List returns all users, or a not-found signal when the store is
// empty; the transport layer translates that into a 404.
func (s *service) List(ctx context.Context) ([]User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.NotFound("no records found")
	}
	return list, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Edit(ctx context.Context, id int64, p Patch) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(u)
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.WithField("user_id", id).Info("user deleted")
	}
	return deleted, nil
}
