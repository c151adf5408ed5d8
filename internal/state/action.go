package state

import (
	"errors"
	"fmt"
)

// ActionType names an action. Action types are unique across all domains
// because every action is routed to every reducer.
type ActionType string

// Action is a tagged union addressed to exactly one domain.
type Action struct {
	Type    ActionType `json:"type"`
	Payload any        `json:"payload,omitempty"`
}

// ErrInvalidPayload is returned by a reducer when an action carries a
// payload of the wrong type or with values the domain cannot accept. It
// signals a programming defect in the caller.
var ErrInvalidPayload = errors.New("invalid action payload")

// NewAction is shorthand for Action{Type: t, Payload: payload}.
func NewAction(t ActionType, payload any) Action {
	return Action{Type: t, Payload: payload}
}

// payloadAs extracts a typed payload, accepting both T and *T.
func payloadAs[T any](a Action) (T, error) {
	switch p := a.Payload.(type) {
	case T:
		return p, nil
	case *T:
		if p != nil {
			return *p, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w: %s expects %T, got %T", ErrInvalidPayload, a.Type, zero, a.Payload)
}

// invalid wraps ErrInvalidPayload with the action type and a reason.
func invalid(a Action, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidPayload, a.Type, reason)
}
