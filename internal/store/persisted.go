package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/redact"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
)

// DefaultKey is the storage key of the composed application state.
const DefaultKey = "study-app-state"

const defaultWriteTimeout = 5 * time.Second

// Options configure a Persisted store. The zero value is usable.
type Options struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Observer defaults to NopObserver.
	Observer Observer
	// WriteTimeout bounds a single backend write. Defaults to 5s.
	WriteTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = defaultWriteTimeout
	}
	return o
}

type subscription[S any] struct {
	id int
	fn func(*S)
}

// Persisted holds the state of one storage key. Dispatch is safe for
// concurrent use; transitions are applied one at a time.
type Persisted[S any] struct {
	key      string
	model    Model[S]
	logger   *slog.Logger
	observer Observer
	writer   *writer[S]

	mu      sync.Mutex
	current *S
	closed  bool
	subs    []subscription[S]
	nextSub int

	// notifyMu is taken before mu is released so subscribers see
	// transitions in dispatch order.
	notifyMu sync.Mutex
}

// Open rehydrates the state stored under key and starts its writer.
// Storage problems never fail Open: a missing, unreadable or corrupt
// value yields defaults, and the reasons are logged.
func Open[S any](ctx context.Context, key string, model Model[S], kv KeyValueStore, opts Options) (*Persisted[S], error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if model == nil || kv == nil {
		return nil, errors.New("store: model and backend are required")
	}

	opts = opts.withDefaults()
	logger := opts.Logger.With(slog.String("component", "store"), slog.String("key", key))

	p := &Persisted[S]{
		key:      key,
		model:    model,
		logger:   logger,
		observer: opts.Observer,
	}
	p.current = p.load(ctx, kv)

	opts.Logger = logger
	p.writer = newWriter(key, kv, model.Prune, opts)
	go p.writer.run()

	return p, nil
}

func (p *Persisted[S]) load(ctx context.Context, kv KeyValueStore) *S {
	raw, err := kv.Get(ctx, p.key)
	switch {
	case IsNotFoundError(err):
		p.logger.Info("no stored state, starting from defaults")
		raw = nil
	case err != nil:
		p.logger.Warn("failed to read stored state, starting from defaults",
			slog.String("error", redact.Error(err)))
		raw = nil
	}

	s, report := p.model.Rehydrate(raw)
	p.logReport(report)
	p.observer.Rehydrated(p.key, report)
	return s
}

func (p *Persisted[S]) logReport(report state.RehydrateReport) {
	if report.BlobError != nil {
		p.logger.Warn("stored state is unusable, starting from defaults",
			slog.String("error", report.BlobError.Error()))
		return
	}
	for domainKey, reason := range report.Defaulted {
		if errors.Is(reason, state.ErrDomainMissing) {
			p.logger.Debug("domain not stored, using defaults", slog.String("domain", string(domainKey)))
			continue
		}
		p.logger.Warn("stored domain is unusable, using defaults",
			slog.String("domain", string(domainKey)),
			slog.String("error", reason.Error()))
	}
	for _, dropped := range report.Dropped {
		p.logger.Debug("dropping unknown stored domain", slog.String("domain", dropped))
	}
	if len(report.Recovered) > 0 {
		p.logger.Info("state rehydrated", slog.Int("domains_recovered", len(report.Recovered)))
	}
}

// Key returns the storage key.
func (p *Persisted[S]) Key() string {
	return p.key
}

// State returns the current state. The value must be treated as
// read-only; it is shared with every other reader.
func (p *Persisted[S]) State() *S {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Snapshot returns the current state in the form it is persisted, with
// volatile fields reset.
func (p *Persisted[S]) Snapshot() *S {
	return p.model.Prune(p.State())
}

// Dispatch applies an action. A reducer error is returned unchanged and
// leaves the current state in place. Persistence happens in the
// background and never causes Dispatch to fail.
//
// Subscribers run on the dispatching goroutine after the state is
// swapped. They must not call Dispatch themselves.
func (p *Persisted[S]) Dispatch(action state.Action) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}

	prev := p.current
	next, err := p.model.Reduce(prev, action)
	if err != nil {
		p.mu.Unlock()
		p.observer.Dispatched(p.key, action.Type, false, err)
		p.logger.Error("dispatch failed",
			slog.String("action", string(action.Type)),
			slog.String("error", err.Error()))
		return err
	}

	changed := next != prev
	if !changed {
		p.mu.Unlock()
		p.observer.Dispatched(p.key, action.Type, false, nil)
		return nil
	}

	p.current = next
	p.writer.submit(next)
	subs := make([]subscription[S], len(p.subs))
	copy(subs, p.subs)

	p.notifyMu.Lock()
	p.mu.Unlock()
	defer p.notifyMu.Unlock()

	p.observer.Dispatched(p.key, action.Type, true, nil)
	for _, sub := range subs {
		sub.fn(next)
	}
	return nil
}

// Subscribe registers fn to receive every new state. The returned
// function unregisters it.
func (p *Persisted[S]) Subscribe(fn func(*S)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.subs = append(p.subs, subscription[S]{id: id, fn: fn})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// Flush waits until every transition dispatched so far has been written,
// or its write has failed.
func (p *Persisted[S]) Flush(ctx context.Context) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return p.writer.flush(ctx)
}

// Close flushes pending writes and stops the writer. It does not close
// the backend, which the caller owns.
func (p *Persisted[S]) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	return p.writer.stop(ctx)
}
