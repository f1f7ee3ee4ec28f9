// internal/platform/postgres/postgres.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// schema is the persisted layout: three tables plus the loan↔book
// association carried as a nullable loan_id on books. Deleting a user
// orphans their loans' user reference; deleting a loan row is blocked
// by the books FK until its books are released.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       BIGSERIAL PRIMARY KEY,
	name     VARCHAR(40) NOT NULL,
	surname  VARCHAR(40) NOT NULL DEFAULT '',
	document TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS loans (
	id         BIGSERIAL PRIMARY KEY,
	start_date DATE NOT NULL,
	due_date   DATE NOT NULL,
	user_id    BIGINT REFERENCES users (id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS books (
	id        BIGSERIAL PRIMARY KEY,
	title     VARCHAR(40) NOT NULL,
	publisher VARCHAR(40) NOT NULL,
	available BOOLEAN NOT NULL DEFAULT TRUE,
	loan_id   BIGINT REFERENCES loans (id)
);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
