// internal/books/memory.go
package books

import (
	"context"
	"sort"
	"sync"

	"biblioteca/internal/apperr"
)

// MemoryRepository is a mutex-guarded map store. Besides the
// Repository contract it exposes Claim, Release and ByLoanID, which
// the in-memory loan store uses to keep the availability invariant.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make(map[int64]Book)}
}

func (r *MemoryRepository) Create(_ context.Context, b *Book) (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	r.books[b.ID] = *b
	return b, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked(func(Book) bool { return true }), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return nil, apperr.NotFound("book with id %d not found", id)
	}
	return &b, nil
}

func (r *MemoryRepository) GetByIDs(_ context.Context, ids []int64) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(ids), nil
}

func (r *MemoryRepository) Update(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[b.ID]
	if !ok {
		return apperr.NotFound("book with id %d not found", b.ID)
	}
	existing.Title = b.Title
	existing.Publisher = b.Publisher
	r.books[b.ID] = existing
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	return true, nil
}

// Claim atomically checks and flips the resolved books to unavailable,
// binding them to loanID. It fails before any flip: BadRequest when no
// id resolves, Conflict when any resolved book is already held.
func (r *MemoryRepository) Claim(_ context.Context, ids []int64, loanID int64) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resolved := r.resolveLocked(ids)
	if len(resolved) == 0 {
		return nil, apperr.BadRequest("no matching books found")
	}
	for _, b := range resolved {
		if !b.Available {
			return nil, apperr.Conflict("book with id %d is not available", b.ID)
		}
	}

	claimed := make([]Book, 0, len(resolved))
	for _, b := range resolved {
		b.Available = false
		id := loanID
		b.LoanID = &id
		r.books[b.ID] = b
		claimed = append(claimed, b)
	}
	return claimed, nil
}

// Release flips every book held by loanID back to available and
// clears its loan reference.
func (r *MemoryRepository) Release(_ context.Context, loanID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.books {
		if b.LoanID != nil && *b.LoanID == loanID {
			b.Available = true
			b.LoanID = nil
			r.books[id] = b
		}
	}
	return nil
}

// ByLoanID returns the books held by loanID in id order.
func (r *MemoryRepository) ByLoanID(_ context.Context, loanID int64) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedLocked(func(b Book) bool {
		return b.LoanID != nil && *b.LoanID == loanID
	}), nil
}

func (r *MemoryRepository) resolveLocked(ids []int64) []Book {
	resolved := make([]Book, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if b, ok := r.books[id]; ok {
			resolved = append(resolved, b)
		}
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i].ID < resolved[j].ID })
	return resolved
}

func (r *MemoryRepository) sortedLocked(keep func(Book) bool) []Book {
	list := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if keep(b) {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
