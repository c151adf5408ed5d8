package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all backends.
var (
	// ErrNotFound is returned by a backend when the key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned by a backend that refuses a write
	// because it would exceed its size limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrClosed is returned when using a store or backend after Close.
	ErrClosed = errors.New("store closed")

	// ErrEmptyKey is returned when a storage key is empty.
	ErrEmptyKey = errors.New("storage key cannot be empty")
)

// IsNotFoundError checks if the error is a "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for backend errors with additional context.
type StoreError struct {
	Backend   string // The backend (e.g., "file", "badger")
	Operation string // The operation that failed (e.g., "get", "set")
	Key       string // The storage key
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s on key %q failed: %v", e.Backend, e.Operation, e.Key, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given backend, operation,
// key and wrapped error.
func NewStoreError(backend, operation, key string, err error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
