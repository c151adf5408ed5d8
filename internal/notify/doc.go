// Package notify provides the notification bridge used by reducers.
//
// Reducers must stay synchronous and cannot depend on the presentation
// layer, yet some transitions (level ups, unlocked achievements, finished
// pomodoro sessions) need to surface a user-visible message. The Bridge is
// a single process-wide slot that the composition root fills with the
// active sink; it is handed to the reducers at construction time instead of
// living in a package-level variable.
//
// The primary components are:
// - Notifier: the interface reducers depend on
// - Bridge: the single-slot implementation
// - LogSink: a sink that writes notifications to a slog.Logger
package notify
