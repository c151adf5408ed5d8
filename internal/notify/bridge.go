package notify

import (
	"log/slog"
	"sync"
)

// Notifier surfaces a user-visible notification.
type Notifier interface {
	Notify(title, message string)
}

// DispatchFunc is the sink installed into a Bridge.
type DispatchFunc func(title, message string)

// Bridge is a single-slot notification dispatcher. It is not a pub/sub bus:
// installing a sink replaces the previous one.
type Bridge struct {
	mu   sync.RWMutex
	sink DispatchFunc
}

// NewBridge creates an empty bridge. Notifications are dropped until a
// sink is installed.
func NewBridge() *Bridge {
	return &Bridge{}
}

// SetDispatcher installs the active sink. The last call wins; nil
// uninstalls.
func (b *Bridge) SetDispatcher(fn DispatchFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = fn
}

// Notify invokes the installed sink, or does nothing when none is
// installed yet.
func (b *Bridge) Notify(title, message string) {
	b.mu.RLock()
	sink := b.sink
	b.mu.RUnlock()

	if sink == nil {
		return
	}
	sink(title, message)
}

// Nop is a Notifier that drops everything.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(string, string) {}

// LogSink returns a DispatchFunc that writes notifications to logger.
func LogSink(logger *slog.Logger) DispatchFunc {
	logger = logger.With("component", "notifications")
	return func(title, message string) {
		logger.Info("notification", "title", title, "message", message)
	}
}
