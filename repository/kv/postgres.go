package kv

import (
	"context"
	"database/sql"
	"errors"
)

type postgres struct{ db *sql.DB }

// NewPostgres returns a Store backed by a kv table in postgres.
func NewPostgres(db *sql.DB) Store { return &postgres{db} }

// EnsurePostgresSchema creates the kv table if missing.
func EnsurePostgresSchema(ctx context.Context, db *sql.DB) error {
	const q = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value JSONB NOT NULL
)`
	_, err := db.ExecContext(ctx, q)
	return err
}

func (s *postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv WHERE key=$1`
	var v []byte
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (s *postgres) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO kv (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}

func (s *postgres) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv WHERE key=$1`
	_, err := s.db.ExecContext(ctx, q, key)
	return err
}

func (s *postgres) List(ctx context.Context, prefix string) ([]Entry, error) {
	const q = `SELECT key, value FROM kv WHERE key LIKE $1 || '%' ORDER BY key`
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
