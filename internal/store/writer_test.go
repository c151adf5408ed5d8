package store_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/memkv"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedKV blocks every Set until release is closed.
type gatedKV struct {
	*memkv.Store
	release chan struct{}
	started chan struct{}

	mu   sync.Mutex
	sets int
}

func newGatedKV() *gatedKV {
	return &gatedKV{Store: memkv.New(), release: make(chan struct{}), started: make(chan struct{}, 100)}
}

func (g *gatedKV) Set(ctx context.Context, key string, value []byte) error {
	g.started <- struct{}{}
	<-g.release
	g.mu.Lock()
	g.sets++
	g.mu.Unlock()
	return g.Store.Set(ctx, key, value)
}

func (g *gatedKV) setCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sets
}

// recordingObserver keeps the last persistence error.
type recordingObserver struct {
	store.NopObserver
	mu  sync.Mutex
	err error
	n   int
}

func (o *recordingObserver) Persisted(_ string, _ int, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
	o.n++
}

func (o *recordingObserver) lastPersistErr() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func TestWriterCoalescesPendingSnapshots(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newGatedKV()
	app := openApp(t, kv, store.Options{})

	require.NoError(t, app.Dispatch(state.NewAction(state.ActionAddXP, 1)))
	<-kv.started // first write is in flight and blocked

	for i := 0; i < 20; i++ {
		require.NoError(t, app.Dispatch(state.NewAction(state.ActionAddXP, 1)), "dispatch must not wait for storage")
	}
	close(kv.release)
	require.NoError(t, app.Flush(ctx))

	assert.Equal(t, 2, kv.setCount(), "queued snapshots collapse into one write")

	raw, err := kv.Get(ctx, store.DefaultKey)
	require.NoError(t, err)
	var blob struct {
		Gamification state.GamificationState `json:"gamification"`
	}
	require.NoError(t, json.Unmarshal(raw, &blob))
	assert.Equal(t, 21, blob.Gamification.XP)
}

func TestFlushHonorsContext(t *testing.T) {
	t.Parallel()
	kv := newGatedKV()
	app := openApp(t, kv, store.Options{})
	t.Cleanup(func() { close(kv.release) })

	require.NoError(t, app.Dispatch(state.NewAction(state.ActionAddXP, 1)))
	<-kv.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, app.Flush(ctx), context.DeadlineExceeded)
}

func TestObserverSeesSuccessfulWrites(t *testing.T) {
	t.Parallel()
	obs := &recordingObserver{}
	app := openApp(t, memkv.New(), store.Options{Observer: obs})

	require.NoError(t, app.Dispatch(state.NewAction(state.ActionToggleTheme, nil)))
	require.NoError(t, app.Flush(context.Background()))

	assert.NoError(t, obs.lastPersistErr())
	assert.Equal(t, 1, obs.n)
}
