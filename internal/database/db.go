package database

import (
	"context"
	"database/sql"
)

// DB is the narrow surface the repositories and seeders need from the
// Postgres pool. Exec returns affected rows; the pgx-specific tag stays
// behind the implementation.
type DB interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
	Begin(ctx context.Context) (Tx, error)

	Ping(ctx context.Context) error
	Close() error

	// SQLDB exposes a database/sql view of the same pool for the
	// migration runner.
	SQLDB() *sql.DB
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type Row interface {
	Scan(dest ...any) error
}
