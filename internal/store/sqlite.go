package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

var _ Backend = (*SQLiteBackend)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteBackend keeps each document as a row of the collections table.
// The body column holds the same JSON text the file backend writes.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn and ensures the schema.
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection; one writer is all this app ever has.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

func (b *SQLiteBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var body string
	err := b.db.QueryRowContext(ctx,
		`SELECT body FROM collections WHERE name = ?`, name,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return []byte(body), nil
}

func (b *SQLiteBackend) Write(ctx context.Context, name string, data []byte) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collections (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	return tx.Commit()
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
