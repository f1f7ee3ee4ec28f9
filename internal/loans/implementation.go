// internal/loans/implementation.go
package loans

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// service implements the Service interface.
type service struct {
	repo   Repository
	log    *logrus.Logger
	tracer trace.Tracer
}

// NewService creates a new loans service instance.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{
		repo:   repo,
		log:    log,
		tracer: otel.Tracer("biblioteca/loans"),
	}
}

// Create registers a loan after validating the dates, then delegates
// the check-and-claim to the repository's transaction.
func (s *service) Create(ctx context.Context, req CreateRequest) (*View, error) {
	ctx, span := s.tracer.Start(ctx, "loans.create",
		trace.WithAttributes(
			attribute.Int64("user.id", req.UserID),
			attribute.Int("book.count", len(req.BookIDs)),
		),
	)
	defer span.End()

	if err := req.Validate(Today()); err != nil {
		return nil, err
	}

	loan := &Loan{
		StartDate: *req.StartDate,
		DueDate:   *req.DueDate,
		UserID:    req.UserID,
	}
	created, err := s.repo.CreateWithBooks(ctx, loan, req.BookIDs)
	if err != nil {
		span.SetAttributes(attribute.Bool("loan.rejected", true))
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"loan_id": created.ID,
		"user_id": created.UserID,
		"books":   len(created.Books),
	}).Info("loan created")

	view := NewView(created)
	return &view, nil
}

func (s *service) List(ctx context.Context) ([]View, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]View, 0, len(list))
	for _, l := range list {
		views = append(views, NewView(l))
	}
	return views, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (*View, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewView(l)
	return &view, nil
}

func (s *service) Edit(ctx context.Context, id int64, p Patch) (*View, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(l)
	if err := s.repo.UpdateDates(ctx, l); err != nil {
		return nil, err
	}
	view := NewView(l)
	return &view, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "loans.delete",
		trace.WithAttributes(attribute.Int64("loan.id", id)),
	)
	defer span.End()

	if err := s.repo.DeleteAndRelease(ctx, id); err != nil {
		return err
	}
	s.log.WithField("loan_id", id).Info("loan deleted, books released")
	return nil
}
