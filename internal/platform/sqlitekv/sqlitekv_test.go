package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, cfg Config) *Store {
	t.Helper()
	cfg.Path = filepath.Join(t.TempDir(), "state.db")
	cfg.Logger = logger.DiscardLogger()
	kv, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := openTemp(t, Config{})

	_, err := kv.Get(ctx, "study-app-state")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "study-app-state", []byte(`{"v":1}`)))
	require.NoError(t, kv.Set(ctx, "study-app-state", []byte(`{"v":2}`)))

	got, err := kv.Get(ctx, "study-app-state")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	updated, err := kv.UpdatedAt(ctx, "study-app-state")
	require.NoError(t, err)
	assert.False(t, updated.IsZero())

	require.NoError(t, kv.Delete(ctx, "study-app-state"))
	_, err = kv.Get(ctx, "study-app-state")
	assert.True(t, store.IsNotFoundError(err))
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	first, err := Open(ctx, Config{Path: path, Logger: logger.DiscardLogger()})
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))
	require.NoError(t, first.Close())

	second, err := Open(ctx, Config{Path: path, Logger: logger.DiscardLogger()})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestStoreMaxValueBytes(t *testing.T) {
	t.Parallel()
	kv := openTemp(t, Config{MaxValueBytes: 2})

	err := kv.Set(context.Background(), "k", []byte("abc"))
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"conn done", sql.ErrConnDone, store.ErrClosed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	other := errors.New("disk on fire")
	assert.Same(t, other, MapError(other))
}
