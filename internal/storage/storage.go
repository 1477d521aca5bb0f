// Package storage provides the key-value persistence backends the builder
// keeps its working state in.
package storage

import "context"

// Store is a flat string key-value store. Implementations return ErrNotFound
// for missing keys and treat Remove of a missing key as a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
