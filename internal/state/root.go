package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// DispatchError wraps a reducer failure with the domain and action that
// caused it. The state that was current before the dispatch stays valid.
type DispatchError struct {
	Domain DomainKey
	Action ActionType
	Err    error
}

// Error implements the error interface for DispatchError.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s reducer failed on %s: %v", e.Domain, e.Action, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DispatchError) Unwrap() error {
	return e.Err
}

// RehydrateReport describes what a rehydration salvaged.
type RehydrateReport struct {
	// Empty is true when there was nothing stored.
	Empty bool
	// BlobError is set when the blob as a whole was unusable.
	BlobError error
	// Recovered lists domains restored from storage.
	Recovered []DomainKey
	// Defaulted maps domains that fell back to their default to the reason.
	Defaulted map[DomainKey]error
	// Dropped lists stored keys that no domain recognizes.
	Dropped []string
}

func newReport() RehydrateReport {
	return RehydrateReport{Defaulted: make(map[DomainKey]error)}
}

// Binding attaches a Domain to its field in AppState.
type Binding interface {
	Key() DomainKey
	apply(st *AppState, a Action) (bool, error)
	setDefault(st *AppState)
	decodeInto(st *AppState, raw []byte) error
	pruneInto(st *AppState)
}

type binding[S any] struct {
	domain Domain[S]
	field  func(*AppState) **S
}

// Bind ties a domain to the AppState field returned by field.
func Bind[S any](d Domain[S], field func(*AppState) **S) Binding {
	return binding[S]{domain: d, field: field}
}

func (b binding[S]) Key() DomainKey { return b.domain.Key }

func (b binding[S]) apply(st *AppState, a Action) (bool, error) {
	slot := b.field(st)
	next, err := b.domain.Reduce(*slot, a)
	if err != nil {
		return false, err
	}
	if next == *slot {
		return false, nil
	}
	*slot = next
	return true, nil
}

func (b binding[S]) setDefault(st *AppState) {
	*b.field(st) = b.domain.Default()
}

func (b binding[S]) decodeInto(st *AppState, raw []byte) error {
	s, err := b.domain.Decode(raw)
	if err != nil {
		return err
	}
	*b.field(st) = s
	return nil
}

func (b binding[S]) pruneInto(st *AppState) {
	slot := b.field(st)
	*slot = b.domain.Prune(*slot)
}

// Root is the composed reducer over AppState.
type Root struct {
	bindings []Binding
}

// Compose combines bindings into one reducer. It panics when two bindings
// share a key.
func Compose(bindings ...Binding) *Root {
	seen := make(map[DomainKey]struct{}, len(bindings))
	for _, b := range bindings {
		if _, dup := seen[b.Key()]; dup {
			// ALLOW-PANIC: duplicate registration is a wiring defect
			panic(fmt.Sprintf("state: domain %q bound twice", b.Key()))
		}
		seen[b.Key()] = struct{}{}
	}
	return &Root{bindings: bindings}
}

// Keys returns the bound domain keys in registration order.
func (r *Root) Keys() []DomainKey {
	keys := make([]DomainKey, len(r.bindings))
	for i, b := range r.bindings {
		keys[i] = b.Key()
	}
	return keys
}

// Default builds the full default state.
func (r *Root) Default() *AppState {
	st := &AppState{}
	for _, b := range r.bindings {
		b.setDefault(st)
	}
	return st
}

// Reduce routes the action to every domain. It returns prev itself when no
// domain changed; otherwise a new AppState sharing every unchanged domain.
// The first reducer error aborts the dispatch.
func (r *Root) Reduce(prev *AppState, a Action) (*AppState, error) {
	next := *prev
	changed := false

	for _, b := range r.bindings {
		domainChanged, err := b.apply(&next, a)
		if err != nil {
			return prev, &DispatchError{Domain: b.Key(), Action: a.Type, Err: err}
		}
		changed = changed || domainChanged
	}

	if !changed {
		return prev, nil
	}
	return &next, nil
}

// Prune returns a copy of st with every domain's volatile fields zeroed.
// st is not modified.
func (r *Root) Prune(st *AppState) *AppState {
	pruned := *st
	for _, b := range r.bindings {
		b.pruneInto(&pruned)
	}
	return &pruned
}

// Rehydrate rebuilds state from a persisted blob without trusting it.
//
// The blob as a whole must be a JSON object, otherwise the full default is
// returned. Each known domain is then salvaged on its own: a value that is
// a JSON object is merged over that domain's default, anything else leaves
// the default in place. Unknown keys are dropped. One corrupted domain
// never affects the others.
func (r *Root) Rehydrate(raw []byte) (*AppState, RehydrateReport) {
	st := r.Default()
	report := newReport()

	if len(bytes.TrimSpace(raw)) == 0 {
		report.Empty = true
		return st, report
	}

	if !isJSONObject(raw) {
		report.BlobError = ErrNotObject
		return st, report
	}

	var blob map[string]json.RawMessage
	if err := json.Unmarshal(raw, &blob); err != nil {
		report.BlobError = fmt.Errorf("parse state blob: %w", err)
		return st, report
	}

	known := make(map[string]struct{}, len(r.bindings))
	for _, b := range r.bindings {
		key := string(b.Key())
		known[key] = struct{}{}

		value, ok := blob[key]
		if !ok {
			report.Defaulted[b.Key()] = ErrDomainMissing
			continue
		}
		if err := b.decodeInto(st, value); err != nil {
			report.Defaulted[b.Key()] = err
			continue
		}
		report.Recovered = append(report.Recovered, b.Key())
	}

	for key := range blob {
		if _, ok := known[key]; !ok {
			report.Dropped = append(report.Dropped, key)
		}
	}
	sort.Strings(report.Dropped)

	return st, report
}
