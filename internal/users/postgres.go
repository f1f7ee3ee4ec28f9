// internal/users/postgres.go
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"biblioteca/internal/apperr"
)

// PostgresRepository implements Repository against the users table.
type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *User) (*User, error) {
	query := `
		INSERT INTO users (name, surname, document)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.GetContext(ctx, &u.ID, query, u.Name, u.Surname, u.Document); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]User, error) {
	var list []User
	query := `SELECT id, name, surname, document FROM users ORDER BY id`
	if err := r.db.SelectContext(ctx, &list, query); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return list, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	query := `SELECT id, name, surname, document FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &u, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user with id %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return &u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *User) error {
	query := `UPDATE users SET name = $1, surname = $2, document = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, u.Name, u.Surname, u.Document, u.ID); err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return exists, nil
}
