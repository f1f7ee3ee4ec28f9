// internal/books/implementation.go
package books

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

// NewService creates a new books service instance.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{repo: repo, log: log}
}

// Create registers a book. Every book starts available and unbound,
// whatever the request body claimed.
func (s *service) Create(ctx context.Context, b Book) (*Book, error) {
	b.Available = true
	b.LoanID = nil
	if err := b.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, &b)
	if err != nil {
		return nil, err
	}
	s.log.WithField("book_id", created.ID).Info("book created")
	return created, nil
}

// List returns all books, or a not-found signal when the store is
// empty; the transport layer translates that into a 404.
func (s *service) List(ctx context.Context) ([]Book, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, apperr.NotFound("no records found")
	}
	return list, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (*Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Edit(ctx context.Context, id int64, p Patch) (*Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(b)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.log.WithField("book_id", id).Info("book deleted")
	}
	return deleted, nil
}
