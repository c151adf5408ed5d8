package state

import "time"

// Bookmark action types.
const (
	ActionAddBookmark    ActionType = "ADD_BOOKMARK"
	ActionRemoveBookmark ActionType = "REMOVE_BOOKMARK"
	ActionClearBookmarks ActionType = "CLEAR_BOOKMARKS"
)

// Bookmark marks a question for later review. A question is bookmarked at
// most once.
type Bookmark struct {
	QuestionID string    `json:"questionId"`
	ExamID     string    `json:"examId,omitempty"`
	Text       string    `json:"text,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookmarksState holds bookmarks in creation order.
type BookmarksState struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// IsBookmarked reports whether the question is bookmarked.
func (s *BookmarksState) IsBookmarked(questionID string) bool {
	return indexOf(s.Bookmarks, questionID, bookmarkID) >= 0
}

func bookmarkID(b Bookmark) string { return b.QuestionID }

// BookmarksDomain builds the bookmarks domain.
func BookmarksDomain(deps Deps) Domain[BookmarksState] {
	return Domain[BookmarksState]{
		Key:     KeyBookmarks,
		Initial: func() BookmarksState { return BookmarksState{Bookmarks: []Bookmark{}} },
		Reducer: func(s *BookmarksState, a Action) (*BookmarksState, error) {
			return reduceBookmarks(deps, s, a)
		},
		Repair: func(s BookmarksState) BookmarksState {
			bookmarks := make([]Bookmark, 0, len(s.Bookmarks))
			for _, b := range s.Bookmarks {
				if b.QuestionID != "" {
					bookmarks, _ = appendNew(bookmarks, b, bookmarkID)
				}
			}
			s.Bookmarks = bookmarks
			return s
		},
	}
}

func reduceBookmarks(deps Deps, s *BookmarksState, a Action) (*BookmarksState, error) {
	switch a.Type {
	case ActionAddBookmark:
		bookmark, err := payloadAs[Bookmark](a)
		if err != nil {
			return nil, err
		}
		if bookmark.QuestionID == "" {
			return nil, invalid(a, "question id is required")
		}
		if s.IsBookmarked(bookmark.QuestionID) {
			return s, nil
		}
		if bookmark.CreatedAt.IsZero() {
			bookmark.CreatedAt = deps.now()
		}
		bookmarks, _ := appendNew(s.Bookmarks, bookmark, bookmarkID)
		return &BookmarksState{Bookmarks: bookmarks}, nil

	case ActionRemoveBookmark:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		bookmarks, removed := removeWhere(s.Bookmarks, func(b Bookmark) bool { return b.QuestionID == id })
		if !removed {
			return s, nil
		}
		return &BookmarksState{Bookmarks: bookmarks}, nil

	case ActionClearBookmarks:
		if len(s.Bookmarks) == 0 {
			return s, nil
		}
		return &BookmarksState{Bookmarks: []Bookmark{}}, nil
	}

	return s, nil
}
