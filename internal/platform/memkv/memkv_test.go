package memkv

import (
	"context"
	"testing"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := New()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got), "stored value is a copy")

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.True(t, store.IsNotFoundError(err))

	assert.ErrorIs(t, kv.Set(ctx, "", value), store.ErrEmptyKey)
}

func TestStoreQuota(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := New(WithQuota(10))

	require.NoError(t, kv.Set(ctx, "a", []byte("12345")))
	require.NoError(t, kv.Set(ctx, "a", []byte("1234567890")), "replacing a value frees its old size")

	err := kv.Set(ctx, "b", []byte("1"))
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "memory", storeErr.Backend)
	assert.Equal(t, "set", storeErr.Operation)
	assert.Equal(t, "b", storeErr.Key)
}

func TestStoreClosed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := New()
	require.NoError(t, kv.Close())

	assert.ErrorIs(t, kv.Set(ctx, "k", nil), store.ErrClosed)
	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrClosed)
}
