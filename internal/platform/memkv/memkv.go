// Package memkv provides an in-memory implementation of
// store.KeyValueStore, used in tests and for ephemeral sessions.
package memkv

import (
	"context"
	"sync"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
)

const backendName = "memory"

// Store keeps values in a map. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	quota  int
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithQuota limits the total size of all stored values in bytes. Writes
// that would exceed it fail with store.ErrQuotaExceeded.
func WithQuota(bytes int) Option {
	return func(s *Store) { s.quota = bytes }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements store.KeyValueStore.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.NewStoreError(backendName, "get", key, store.ErrClosed)
	}
	value, ok := s.data[key]
	if !ok {
		return nil, store.NewStoreError(backendName, "get", key, store.ErrNotFound)
	}
	return append([]byte(nil), value...), nil
}

// Set implements store.KeyValueStore.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return store.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreError(backendName, "set", key, store.ErrClosed)
	}
	if s.quota > 0 && s.sizeWithout(key)+len(value) > s.quota {
		return store.NewStoreError(backendName, "set", key, store.ErrQuotaExceeded)
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements store.KeyValueStore. Deleting a missing key is not an
// error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.NewStoreError(backendName, "delete", key, store.ErrClosed)
	}
	delete(s.data, key)
	return nil
}

// Close implements store.KeyValueStore.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Keys returns the number of stored keys.
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) sizeWithout(key string) int {
	total := 0
	for k, v := range s.data {
		if k != key {
			total += len(v)
		}
	}
	return total
}
