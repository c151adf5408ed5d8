// Package store persists application state in a key/value backend.
//
// A Persisted store owns the current state of one storage key. Dispatch
// applies an action through the key's Model and hands the result to a
// background writer, which prunes, serializes and saves it without ever
// blocking or failing the dispatch. Open rebuilds the initial state from
// whatever the backend holds, trusting none of it.
//
// Backends implement KeyValueStore and live under internal/platform.
package store
