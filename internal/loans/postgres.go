// internal/loans/postgres.go
package loans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"biblioteca/internal/apperr"
	"biblioteca/internal/books"
)

// PostgresRepository implements Repository against the loans, books
// and users tables. The lifecycle writes span two tables, so both run
// inside a single transaction with the availability check done under
// row locks.
type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type loanRow struct {
	ID        int64          `db:"id"`
	StartDate Date           `db:"start_date"`
	DueDate   Date           `db:"due_date"`
	UserID    sql.NullInt64  `db:"user_id"`
	UserName  sql.NullString `db:"user_name"`
}

func (row loanRow) toLoan() *Loan {
	return &Loan{
		ID:        row.ID,
		StartDate: row.StartDate,
		DueDate:   row.DueDate,
		UserID:    row.UserID.Int64,
		UserName:  row.UserName.String,
	}
}

func (r *PostgresRepository) CreateWithBooks(ctx context.Context, l *Loan, bookIDs []int64) (*Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var userName string
	err = tx.GetContext(ctx, &userName, `SELECT name FROM users WHERE id = $1`, l.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", l.UserID, err)
	}

	// Lock the requested books so a concurrent creation cannot claim
	// them between the check and the flip.
	var resolved []books.Book
	err = tx.SelectContext(ctx, &resolved, `
		SELECT id, title, publisher, available, loan_id
		FROM books
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`, pq.Array(bookIDs))
	if err != nil {
		return nil, fmt.Errorf("select books for update: %w", err)
	}
	if len(resolved) == 0 {
		return nil, apperr.BadRequest("no matching books found")
	}
	for _, b := range resolved {
		if !b.Available {
			return nil, apperr.Conflict("book with id %d is not available", b.ID)
		}
	}

	err = tx.GetContext(ctx, &l.ID, `
		INSERT INTO loans (start_date, due_date, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, l.StartDate, l.DueDate, l.UserID)
	if err != nil {
		return nil, fmt.Errorf("insert loan: %w", err)
	}

	resolvedIDs := make([]int64, 0, len(resolved))
	for _, b := range resolved {
		resolvedIDs = append(resolvedIDs, b.ID)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE books SET available = FALSE, loan_id = $1 WHERE id = ANY($2)
	`, l.ID, pq.Array(resolvedIDs))
	if err != nil {
		return nil, fmt.Errorf("claim books: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit loan creation: %w", err)
	}

	l.UserName = userName
	l.Books = resolved
	for i := range l.Books {
		l.Books[i].Available = false
		loanID := l.ID
		l.Books[i].LoanID = &loanID
	}
	return l, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Loan, error) {
	var row loanRow
	err := r.db.GetContext(ctx, &row, `
		SELECT l.id, l.start_date, l.due_date, l.user_id, u.name AS user_name
		FROM loans l
		LEFT JOIN users u ON u.id = l.user_id
		WHERE l.id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("loan with id %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("select loan %d: %w", id, err)
	}

	l := row.toLoan()
	err = r.db.SelectContext(ctx, &l.Books, `
		SELECT id, title, publisher, available, loan_id
		FROM books
		WHERE loan_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select loan %d books: %w", id, err)
	}
	return l, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Loan, error) {
	var rows []loanRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT l.id, l.start_date, l.due_date, l.user_id, u.name AS user_name
		FROM loans l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.id
	`)
	if err != nil {
		return nil, fmt.Errorf("select loans: %w", err)
	}

	var held []books.Book
	err = r.db.SelectContext(ctx, &held, `
		SELECT id, title, publisher, available, loan_id
		FROM books
		WHERE loan_id IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select held books: %w", err)
	}

	byLoan := make(map[int64][]books.Book, len(rows))
	for _, b := range held {
		byLoan[*b.LoanID] = append(byLoan[*b.LoanID], b)
	}

	list := make([]*Loan, 0, len(rows))
	for _, row := range rows {
		l := row.toLoan()
		l.Books = byLoan[l.ID]
		list = append(list, l)
	}
	return list, nil
}

func (r *PostgresRepository) UpdateDates(ctx context.Context, l *Loan) error {
	query := `UPDATE loans SET start_date = $1, due_date = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, l.StartDate, l.DueDate, l.ID); err != nil {
		return fmt.Errorf("update loan %d: %w", l.ID, err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAndRelease(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var loanID int64
	err = tx.GetContext(ctx, &loanID, `SELECT id FROM loans WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("loan with id %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("select loan %d: %w", id, err)
	}

	// Release before the loan row disappears; the FK from books makes
	// the opposite order impossible anyway.
	_, err = tx.ExecContext(ctx, `
		UPDATE books SET available = TRUE, loan_id = NULL WHERE loan_id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("release books: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM loans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete loan %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit loan deletion: %w", err)
	}
	return nil
}
