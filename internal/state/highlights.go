package state

import (
	"slices"
	"time"
)

// Highlight action types.
const (
	ActionAddHighlight          ActionType = "ADD_HIGHLIGHT"
	ActionRemoveHighlight       ActionType = "REMOVE_HIGHLIGHT"
	ActionClearSourceHighlights ActionType = "CLEAR_SOURCE_HIGHLIGHTS"
)

// Highlight marks a span of text in a source document.
type Highlight struct {
	ID        string    `json:"id"`
	SourceID  string    `json:"sourceId"`
	Text      string    `json:"text"`
	Color     string    `json:"color,omitempty"`
	Start     int       `json:"start"`
	End       int       `json:"end"`
	CreatedAt time.Time `json:"createdAt"`
}

// HighlightsState holds highlights across all sources.
type HighlightsState struct {
	Highlights []Highlight `json:"highlights"`
}

// ForSource returns the highlights of one source ordered by position.
func (s *HighlightsState) ForSource(sourceID string) []Highlight {
	out := make([]Highlight, 0)
	for _, h := range s.Highlights {
		if h.SourceID == sourceID {
			out = append(out, h)
		}
	}
	slices.SortStableFunc(out, func(a, b Highlight) int { return a.Start - b.Start })
	return out
}

func highlightID(h Highlight) string { return h.ID }

// HighlightsDomain builds the highlights domain.
func HighlightsDomain(deps Deps) Domain[HighlightsState] {
	return Domain[HighlightsState]{
		Key:     KeyHighlights,
		Initial: func() HighlightsState { return HighlightsState{Highlights: []Highlight{}} },
		Reducer: func(s *HighlightsState, a Action) (*HighlightsState, error) {
			return reduceHighlights(deps, s, a)
		},
		Repair: func(s HighlightsState) HighlightsState {
			highlights := make([]Highlight, 0, len(s.Highlights))
			for _, h := range s.Highlights {
				if h.ID != "" && h.Start >= 0 && h.End >= h.Start {
					highlights = append(highlights, h)
				}
			}
			s.Highlights = highlights
			return s
		},
	}
}

func reduceHighlights(deps Deps, s *HighlightsState, a Action) (*HighlightsState, error) {
	switch a.Type {
	case ActionAddHighlight:
		h, err := payloadAs[Highlight](a)
		if err != nil {
			return nil, err
		}
		if h.ID == "" || h.SourceID == "" {
			return nil, invalid(a, "highlight needs an id and a source")
		}
		if h.Start < 0 || h.End < h.Start {
			return nil, invalid(a, "highlight range is invalid")
		}
		if h.CreatedAt.IsZero() {
			h.CreatedAt = deps.now()
		}
		return &HighlightsState{Highlights: upsert(s.Highlights, h, highlightID)}, nil

	case ActionRemoveHighlight:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		highlights, removed := removeWhere(s.Highlights, func(h Highlight) bool { return h.ID == id })
		if !removed {
			return s, nil
		}
		return &HighlightsState{Highlights: highlights}, nil

	case ActionClearSourceHighlights:
		sourceID, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		highlights, removed := removeWhere(s.Highlights, func(h Highlight) bool { return h.SourceID == sourceID })
		if !removed {
			return s, nil
		}
		return &HighlightsState{Highlights: highlights}, nil
	}

	return s, nil
}
