package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type notification struct {
	title   string
	message string
}

// recorder captures notifications sent by reducers.
type recorder struct {
	mu    sync.Mutex
	items []notification
}

func (r *recorder) Notify(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, notification{title, message})
}

func (r *recorder) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.items))
	for i, n := range r.items {
		out[i] = n.title
	}
	return out
}

// clock is a settable test clock.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock(now time.Time) *clock { return &clock{now: now} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testDeps() (Deps, *recorder, *clock) {
	rec := &recorder{}
	clk := newClock(testNow)
	return Deps{Clock: clk.Now, Notifier: rec}, rec, clk
}

// dispatch applies actions in order and fails the test on any error.
func dispatch(t *testing.T, root *Root, st *AppState, actions ...Action) *AppState {
	t.Helper()
	for _, a := range actions {
		next, err := root.Reduce(st, a)
		require.NoError(t, err, "dispatch %s", a.Type)
		st = next
	}
	return st
}
