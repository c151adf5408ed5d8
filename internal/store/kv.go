package store

import "context"

// KeyValueStore is the storage contract: one opaque value per string key.
// Values are UTF-8 JSON in practice but backends treat them as bytes.
//
// Get returns ErrNotFound (possibly wrapped) when the key holds nothing.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
