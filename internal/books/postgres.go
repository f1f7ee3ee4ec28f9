// internal/books/postgres.go
package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"biblioteca/internal/apperr"
)

// PostgresRepository implements Repository against the books table.
type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, b *Book) (*Book, error) {
	query := `
		INSERT INTO books (title, publisher, available)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &b.ID, query, b.Title, b.Publisher, b.Available); err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Book, error) {
	var list []Book
	query := `SELECT id, title, publisher, available, loan_id FROM books ORDER BY id`
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Book, error) {
	var b Book
	query := `SELECT id, title, publisher, available, loan_id FROM books WHERE id = $1`
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("book with id %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("select book %d: %w", id, err)
	}
	return &b, nil
}

func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []int64) ([]Book, error) {
	var list []Book
	query := `SELECT id, title, publisher, available, loan_id FROM books WHERE id = ANY($1) ORDER BY id`
	if err := r.db.SelectContext(ctx, &list, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select books by ids: %w", err)
	}
	return list, nil
}

// Update persists the editable fields only; availability and loan
// linkage are owned by the loan lifecycle.
func (r *PostgresRepository) Update(ctx context.Context, b *Book) error {
	query := `UPDATE books SET title = $1, publisher = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, b.Title, b.Publisher, b.ID); err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
