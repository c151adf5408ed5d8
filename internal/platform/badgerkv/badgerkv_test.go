package badgerkv

import (
	"context"
	"testing"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv, err := Open(InMemoryConfig())
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	_, err = kv.Get(ctx, "study-app-state")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, kv.Set(ctx, "study-app-state", []byte(`{"tasks":{}}`)))
	got, err := kv.Get(ctx, "study-app-state")
	require.NoError(t, err)
	assert.Equal(t, `{"tasks":{}}`, string(got))

	require.NoError(t, kv.Delete(ctx, "study-app-state"))
	_, err = kv.Get(ctx, "study-app-state")
	assert.True(t, store.IsNotFoundError(err))
}

func TestStoreOnDisk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := DefaultConfig(t.TempDir())
	cfg.GCInterval = 0

	kv, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Close())

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()
	_, err := Open(Config{})
	assert.Error(t, err)
}

func TestSetRejectsEmptyKey(t *testing.T) {
	t.Parallel()
	kv, err := Open(InMemoryConfig())
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()

	assert.ErrorIs(t, kv.Set(context.Background(), "", []byte("v")), store.ErrEmptyKey)
}
