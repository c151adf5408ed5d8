package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is reported when a persisted domain value is not a JSON
// object (an array, null, or a primitive left behind by schema drift).
var ErrNotObject = errors.New("persisted value is not a JSON object")

// Reducer is a pure state transition for one domain. It returns the same
// pointer when the action does not concern the domain or changes nothing,
// and never modifies *state.
type Reducer[S any] func(state *S, action Action) (*S, error)

// Domain bundles everything needed to run one slice of state.
type Domain[S any] struct {
	Key DomainKey

	// Initial builds the default sub-state.
	Initial func() S

	// Reducer applies actions.
	Reducer Reducer[S]

	// Volatile zeroes session-local fields (loading flags, errors, running
	// timers, open modals). Nil when the domain has none.
	Volatile func(S) S

	// Repair restores invariants on data decoded from storage. Nil when
	// any decoded value is acceptable.
	Repair func(S) S
}

// Default returns a fresh default sub-state.
func (d Domain[S]) Default() *S {
	s := d.Initial()
	return &s
}

// Reduce applies the reducer.
func (d Domain[S]) Reduce(s *S, a Action) (*S, error) {
	return d.Reducer(s, a)
}

// Prune returns a copy with volatile fields zeroed, or s itself when the
// domain has no volatile fields.
func (d Domain[S]) Prune(s *S) *S {
	if d.Volatile == nil || s == nil {
		return s
	}
	pruned := d.Volatile(*s)
	return &pruned
}

// Decode shallow-merges a persisted JSON object over the default. Fields
// absent from raw keep their default; volatile fields are forced to their
// safe values and Repair runs last.
func (d Domain[S]) Decode(raw []byte) (*S, error) {
	if !isJSONObject(raw) {
		return nil, ErrNotObject
	}

	s := d.Initial()
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.Key, err)
	}

	if d.Volatile != nil {
		s = d.Volatile(s)
	}
	if d.Repair != nil {
		s = d.Repair(s)
	}
	return &s, nil
}

// Rehydrate decodes a blob persisted under a key of its own. It never
// fails: anything unusable yields the default.
func (d Domain[S]) Rehydrate(raw []byte) (*S, RehydrateReport) {
	report := newReport()

	if len(bytes.TrimSpace(raw)) == 0 {
		report.Empty = true
		return d.Default(), report
	}

	s, err := d.Decode(raw)
	if err != nil {
		report.BlobError = err
		return d.Default(), report
	}

	report.Recovered = append(report.Recovered, d.Key)
	return s, report
}

func isJSONObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// ErrDomainMissing is reported for a domain absent from the stored blob.
var ErrDomainMissing = errors.New("domain missing from stored state")
