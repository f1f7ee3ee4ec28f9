// internal/loans/memory.go
package loans

import (
	"context"
	"sort"
	"sync"

	"biblioteca/internal/apperr"
	"biblioteca/internal/books"
	"biblioteca/internal/users"
)

// MemoryRepository implements Repository over the in-memory user and
// book stores. The book store's Claim/Release keep the availability
// invariant atomic; the loans mutex serializes the lifecycle itself.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	loans  map[int64]Loan

	users *users.MemoryRepository
	books *books.MemoryRepository
}

func NewMemoryRepository(u *users.MemoryRepository, b *books.MemoryRepository) *MemoryRepository {
	return &MemoryRepository{
		loans: make(map[int64]Loan),
		users: u,
		books: b,
	}
}

func (r *MemoryRepository) CreateWithBooks(ctx context.Context, l *Loan, bookIDs []int64) (*Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, err := r.users.GetByID(ctx, l.UserID)
	if apperr.IsNotFound(err) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}

	id := r.nextID + 1
	claimed, err := r.books.Claim(ctx, bookIDs, id)
	if err != nil {
		return nil, err
	}

	r.nextID = id
	l.ID = id
	l.UserName = owner.Name
	l.Books = claimed
	r.loans[id] = Loan{ID: id, StartDate: l.StartDate, DueDate: l.DueDate, UserID: l.UserID}
	return l, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(ctx, id)
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.loans))
	for id := range r.loans {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]*Loan, 0, len(ids))
	for _, id := range ids {
		l, err := r.resolveLocked(ctx, id)
		if err != nil {
			return nil, err
		}
		list = append(list, l)
	}
	return list, nil
}

func (r *MemoryRepository) UpdateDates(_ context.Context, l *Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.loans[l.ID]
	if !ok {
		return apperr.NotFound("loan with id %d not found", l.ID)
	}
	stored.StartDate = l.StartDate
	stored.DueDate = l.DueDate
	r.loans[l.ID] = stored
	return nil
}

func (r *MemoryRepository) DeleteAndRelease(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[id]; !ok {
		return apperr.NotFound("loan with id %d not found", id)
	}
	if err := r.books.Release(ctx, id); err != nil {
		return err
	}
	delete(r.loans, id)
	return nil
}

func (r *MemoryRepository) resolveLocked(ctx context.Context, id int64) (*Loan, error) {
	stored, ok := r.loans[id]
	if !ok {
		return nil, apperr.NotFound("loan with id %d not found", id)
	}

	l := stored
	if owner, err := r.users.GetByID(ctx, l.UserID); err == nil {
		l.UserName = owner.Name
	}
	held, err := r.books.ByLoanID(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Books = held
	return &l, nil
}
