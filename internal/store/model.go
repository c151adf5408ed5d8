package store

import (
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
)

// Model is everything a Persisted store needs to know about its state
// type. *state.Root is the model of the composed AppState; a single
// state.Domain is the model of a legacy per-domain key.
type Model[S any] interface {
	Default() *S
	Reduce(current *S, action state.Action) (*S, error)
	Prune(s *S) *S
	Rehydrate(raw []byte) (*S, state.RehydrateReport)
}

// Observer receives store events, typically to record metrics.
type Observer interface {
	Rehydrated(key string, report state.RehydrateReport)
	Dispatched(key string, action state.ActionType, changed bool, err error)
	Persisted(key string, size int, elapsed time.Duration, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

// Rehydrated implements Observer.
func (NopObserver) Rehydrated(string, state.RehydrateReport) {}

// Dispatched implements Observer.
func (NopObserver) Dispatched(string, state.ActionType, bool, error) {}

// Persisted implements Observer.
func (NopObserver) Persisted(string, int, time.Duration, error) {}
