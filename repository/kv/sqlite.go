package kv

import (
	"context"
	"database/sql"
	"errors"
)

type sqlite struct{ db *sql.DB }

// NewSQLite returns a Store backed by an embedded sqlite database,
// the closest server-side analog of the browser's localStorage the
// original prototype persisted to.
func NewSQLite(db *sql.DB) Store { return &sqlite{db} }

// EnsureSQLiteSchema creates the kv table if missing.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	const q = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value BLOB NOT NULL
)`
	_, err := db.ExecContext(ctx, q)
	return err
}

func (s *sqlite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv WHERE key=?`
	var v []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (s *sqlite) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}

func (s *sqlite) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv WHERE key=?`
	_, err := s.db.ExecContext(ctx, q, key)
	return err
}

func (s *sqlite) List(ctx context.Context, prefix string) ([]Entry, error) {
	const q = `SELECT key, value FROM kv WHERE key LIKE ? || '%' ORDER BY key`
	rows, err := s.db.QueryContext(ctx, q, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
