package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/redact"
)

// writer saves snapshots of one key on a background goroutine. Its
// mailbox holds a single snapshot: a newer one replaces an unsaved older
// one, so saves never reorder and a slow backend only ever sees the
// latest state.
type writer[S any] struct {
	key      string
	kv       KeyValueStore
	prune    func(*S) *S
	timeout  time.Duration
	logger   *slog.Logger
	observer Observer

	mu       sync.Mutex
	pending  *S
	barriers []chan struct{}

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}

	// last is the most recent blob written successfully. Only the writer
	// goroutine touches it.
	last []byte
}

func newWriter[S any](key string, kv KeyValueStore, prune func(*S) *S, opts Options) *writer[S] {
	return &writer[S]{
		key:      key,
		kv:       kv,
		prune:    prune,
		timeout:  opts.WriteTimeout,
		logger:   opts.Logger,
		observer: opts.Observer,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// submit replaces the pending snapshot and wakes the writer. It never
// blocks on I/O.
func (w *writer[S]) submit(s *S) {
	w.mu.Lock()
	w.pending = s
	w.mu.Unlock()
	w.signal()
}

func (w *writer[S]) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// flush waits until every snapshot submitted before the call has been
// attempted.
func (w *writer[S]) flush(ctx context.Context) error {
	barrier := make(chan struct{})
	w.mu.Lock()
	w.barriers = append(w.barriers, barrier)
	w.mu.Unlock()
	w.signal()

	select {
	case <-barrier:
		return nil
	case <-w.stopped:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stop drains the mailbox and ends the goroutine.
func (w *writer[S]) stop(ctx context.Context) error {
	close(w.done)
	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *writer[S]) run() {
	defer close(w.stopped)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.done:
			w.drain()
			return
		}
	}
}

func (w *writer[S]) drain() {
	w.mu.Lock()
	s := w.pending
	w.pending = nil
	barriers := w.barriers
	w.barriers = nil
	w.mu.Unlock()

	if s != nil {
		w.write(s)
	}
	for _, b := range barriers {
		close(b)
	}
}

// write prunes, serializes and saves one snapshot. Failures are logged
// and reported to the observer; the in-memory state stays authoritative
// and the next successful write catches up.
func (w *writer[S]) write(s *S) {
	start := time.Now()

	raw, err := json.Marshal(w.prune(s))
	if err != nil {
		w.logger.Error("failed to serialize state", slog.String("error", err.Error()))
		w.observer.Persisted(w.key, 0, time.Since(start), err)
		return
	}

	if w.last != nil && bytes.Equal(raw, w.last) {
		w.logger.Debug("persisted state unchanged, skipping write")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.kv.Set(ctx, w.key, raw); err != nil {
		level := slog.LevelError
		if errors.Is(err, ErrQuotaExceeded) {
			level = slog.LevelWarn
		}
		w.logger.Log(ctx, level, "failed to persist state",
			slog.Int("bytes", len(raw)),
			slog.String("error", redact.Error(err)))
		w.observer.Persisted(w.key, len(raw), time.Since(start), err)
		return
	}

	w.last = raw
	w.observer.Persisted(w.key, len(raw), time.Since(start), nil)
	w.logger.Debug("state persisted",
		slog.Int("bytes", len(raw)),
		slog.Duration("elapsed", time.Since(start)))
}
