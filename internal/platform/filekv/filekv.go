// Package filekv stores each key as a JSON file in a directory. It is the
// on-disk equivalent of browser local storage: one blob per key, replaced
// atomically on every write.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
)

const backendName = "file"

// Config configures a Store.
type Config struct {
	// Dir holds one file per key. It is created if missing.
	Dir string
	// SyncWrites fsyncs every file before it replaces the previous one.
	SyncWrites bool
	// MaxValueBytes rejects larger values with store.ErrQuotaExceeded.
	// Zero means unlimited.
	MaxValueBytes int
}

// Store is a directory-backed store.KeyValueStore.
type Store struct {
	cfg Config

	// mu serializes writers so a rename never races a concurrent
	// temp-file cleanup for the same key.
	mu     sync.Mutex
	closed bool
}

// Open creates the directory if needed and returns a Store.
func Open(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errors.New("filekv: directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create state directory %s: %w", cfg.Dir, err)
	}
	return &Store{cfg: cfg}, nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.cfg.Dir, url.PathEscape(key)+".json")
}

// Get implements store.KeyValueStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := s.check(ctx, "get", key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, store.NewStoreError(backendName, "get", key, store.ErrNotFound)
	}
	if err != nil {
		return nil, store.NewStoreError(backendName, "get", key, err)
	}
	return data, nil
}

// Set implements store.KeyValueStore. The value is written to a temporary
// file in the same directory and renamed over the previous one, so
// readers see either the old or the new blob, never a torn write.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.check(ctx, "set", key); err != nil {
		return err
	}
	if s.cfg.MaxValueBytes > 0 && len(value) > s.cfg.MaxValueBytes {
		return store.NewStoreError(backendName, "set", key, store.ErrQuotaExceeded)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(s.Path(key), value); err != nil {
		return store.NewStoreError(backendName, "set", key, err)
	}
	return nil
}

func (s *Store) writeAtomic(path string, value []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if s.cfg.SyncWrites {
		if err = tmp.Sync(); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete implements store.KeyValueStore. Deleting a missing key is not an
// error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.check(ctx, "delete", key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return store.NewStoreError(backendName, "delete", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *Store) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	if err := s.check(ctx, "stat", key); err != nil {
		return time.Time{}, err
	}

	info, err := os.Stat(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, store.NewStoreError(backendName, "stat", key, store.ErrNotFound)
	}
	if err != nil {
		return time.Time{}, store.NewStoreError(backendName, "stat", key, err)
	}
	return info.ModTime(), nil
}

// Close implements store.KeyValueStore.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) check(ctx context.Context, op, key string) error {
	if key == "" {
		return store.ErrEmptyKey
	}
	if err := ctx.Err(); err != nil {
		return store.NewStoreError(backendName, op, key, err)
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return store.NewStoreError(backendName, op, key, store.ErrClosed)
	}
	return nil
}
