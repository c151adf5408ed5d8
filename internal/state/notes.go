package state

import "time"

// Note action types.
const (
	ActionSaveNote   ActionType = "SAVE_NOTE"
	ActionDeleteNote ActionType = "DELETE_NOTE"
)

// Note is a free-form study note, optionally tied to a source document.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SourceID  string    `json:"sourceId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotesState holds notes in creation order.
type NotesState struct {
	Notes []Note `json:"notes"`
}

// Note returns the note with the given id.
func (s *NotesState) Note(id string) (Note, bool) {
	if i := indexOf(s.Notes, id, noteID); i >= 0 {
		return s.Notes[i], true
	}
	return Note{}, false
}

func noteID(n Note) string { return n.ID }

// NotesDomain builds the notes domain.
func NotesDomain(deps Deps) Domain[NotesState] {
	return Domain[NotesState]{
		Key:     KeyNotes,
		Initial: func() NotesState { return NotesState{Notes: []Note{}} },
		Reducer: func(s *NotesState, a Action) (*NotesState, error) {
			return reduceNotes(deps, s, a)
		},
		Repair: func(s NotesState) NotesState {
			s.Notes = nonNil(s.Notes)
			return s
		},
	}
}

func reduceNotes(deps Deps, s *NotesState, a Action) (*NotesState, error) {
	switch a.Type {
	case ActionSaveNote:
		note, err := payloadAs[Note](a)
		if err != nil {
			return nil, err
		}
		if note.ID == "" {
			return nil, invalid(a, "note id is required")
		}
		now := deps.now()
		if existing, ok := s.Note(note.ID); ok {
			note.CreatedAt = existing.CreatedAt
		} else if note.CreatedAt.IsZero() {
			note.CreatedAt = now
		}
		note.UpdatedAt = now
		return &NotesState{Notes: upsert(s.Notes, note, noteID)}, nil

	case ActionDeleteNote:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		notes, removed := removeWhere(s.Notes, func(n Note) bool { return n.ID == id })
		if !removed {
			return s, nil
		}
		return &NotesState{Notes: notes}, nil
	}

	return s, nil
}
