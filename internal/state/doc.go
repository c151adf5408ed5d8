// Package state holds the application state of the study client and the
// pure reducers that evolve it.
//
// The state is split into fourteen independent domains. Each domain has its
// own sub-state type, its own set of action types, a reducer, a default, a
// prune step that zeroes session-local fields before persistence, and a
// sanitize step that restores invariants on data read from storage.
// Compose combines the domains into one reducer over AppState that routes
// every action to every domain; a domain ignores actions it does not own by
// returning the same pointer it was given.
//
// Nothing in this package performs I/O. Time and notifications reach the
// reducers only through the Deps captured when the domains are built.
package state
