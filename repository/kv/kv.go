// Package kv is the persistence collaborator: a string-keyed store of
// JSON blobs. Key patterns in use: identity:<account>, ratings:<account>,
// equipment:<id>, rental:<account>:<id>, pairing:<account>.
package kv

import "context"

type Entry struct {
	Key   string
	Value []byte
}

type Store interface {
	// Get returns the blob under key; found=false when absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set writes the whole blob under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns all entries whose key starts with prefix, ordered by key.
	List(ctx context.Context, prefix string) ([]Entry, error)
}
