// Package storage provides the flat key-value medium the record store persists to
package storage

import (
	"context"
	"errors"
)

// Medium is a string-to-string dictionary scoped to one application,
// modelled on a browser's localStorage.
type Medium interface {
	// GetItem returns the value under key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Keys lists every stored key
	Keys(ctx context.Context) ([]string, error)
}

var (
	// ErrQuotaExceeded is returned by a quota-limited medium when a write
	// would push the stored size past its limit
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrClosed is returned by a medium after Close
	ErrClosed = errors.New("storage medium is closed")
)

// Compile-time verification that the concrete media implement Medium
var (
	_ Medium = (*Memory)(nil)
	_ Medium = (*SQLite)(nil)
)
