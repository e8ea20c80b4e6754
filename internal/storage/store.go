// Package storage provides the named-blob persistence adapter: every
// collection is one JSON value under one key, read and replaced whole.
// There are no transactions and no partial updates; a failed write leaves
// the previous value in place.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is the persistence adapter contract. Implementations must make a
// single Get/Set/Remove call safe under concurrent use; read-modify-write
// sequences across calls follow last-write-wins semantics.
type Store interface {
	// Get unmarshals the blob stored under key into dest.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set marshals value and replaces the blob stored under key.
	Set(ctx context.Context, key string, value interface{}) error

	// Remove deletes the blob under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Ping checks the health of the backing store.
	Ping(ctx context.Context) error

	// Close releases backing connections.
	Close() error
}
