// Package store is the narrow key-value adapter the topics repository
// persists through.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store holds opaque byte values under string keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
