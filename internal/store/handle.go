package store

import (
	"context"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
)

// AppStore is the persisted composed application state.
type AppStore = Persisted[state.AppState]

// NewAppStore opens the composed state under key with every domain
// registered.
func NewAppStore(ctx context.Context, key string, kv KeyValueStore, deps state.Deps, opts Options) (*AppStore, error) {
	return Open[state.AppState](ctx, key, state.NewRegistry(deps), kv, opts)
}

// Handle is a domain-scoped view of an AppStore: the domain's state plus
// the shared dispatch.
type Handle[S any] struct {
	store    *AppStore
	selectFn func(*state.AppState) *S
}

// Use builds a handle over the sub-state returned by selectFn.
func Use[S any](s *AppStore, selectFn func(*state.AppState) *S) Handle[S] {
	return Handle[S]{store: s, selectFn: selectFn}
}

// State returns the current sub-state.
func (h Handle[S]) State() *S {
	return h.selectFn(h.store.State())
}

// Dispatch forwards to the store.
func (h Handle[S]) Dispatch(action state.Action) error {
	return h.store.Dispatch(action)
}

// Subscribe calls fn only when this domain's sub-state changes.
func (h Handle[S]) Subscribe(fn func(*S)) (unsubscribe func()) {
	last := h.State()
	return h.store.Subscribe(func(st *state.AppState) {
		next := h.selectFn(st)
		if next == last {
			return
		}
		last = next
		fn(next)
	})
}

// Exam returns the exam handle.
func Exam(s *AppStore) Handle[state.ExamState] {
	return Use(s, func(st *state.AppState) *state.ExamState { return st.Exam })
}

// StudyAids returns the study-aids handle.
func StudyAids(s *AppStore) Handle[state.StudyAidsState] {
	return Use(s, func(st *state.AppState) *state.StudyAidsState { return st.StudyAids })
}

// StudyPlan returns the study-plan handle.
func StudyPlan(s *AppStore) Handle[state.StudyPlanState] {
	return Use(s, func(st *state.AppState) *state.StudyPlanState { return st.StudyPlan })
}

// Tasks returns the tasks handle.
func Tasks(s *AppStore) Handle[state.TasksState] {
	return Use(s, func(st *state.AppState) *state.TasksState { return st.Tasks })
}

// Gamification returns the gamification handle.
func Gamification(s *AppStore) Handle[state.GamificationState] {
	return Use(s, func(st *state.AppState) *state.GamificationState { return st.Gamification })
}

// Theme returns the theme handle.
func Theme(s *AppStore) Handle[state.ThemeState] {
	return Use(s, func(st *state.AppState) *state.ThemeState { return st.Theme })
}

// AIInteraction returns the ai-interaction handle.
func AIInteraction(s *AppStore) Handle[state.AIInteractionState] {
	return Use(s, func(st *state.AppState) *state.AIInteractionState { return st.AIInteraction })
}

// Music returns the music handle.
func Music(s *AppStore) Handle[state.MusicState] {
	return Use(s, func(st *state.AppState) *state.MusicState { return st.Music })
}

// SmartSettings returns the smart-settings handle.
func SmartSettings(s *AppStore) Handle[state.SmartSettingsState] {
	return Use(s, func(st *state.AppState) *state.SmartSettingsState { return st.SmartSettings })
}

// Pomodoro returns the pomodoro handle.
func Pomodoro(s *AppStore) Handle[state.PomodoroState] {
	return Use(s, func(st *state.AppState) *state.PomodoroState { return st.Pomodoro })
}

// Bookmarks returns the bookmarks handle.
func Bookmarks(s *AppStore) Handle[state.BookmarksState] {
	return Use(s, func(st *state.AppState) *state.BookmarksState { return st.Bookmarks })
}

// Notes returns the notes handle.
func Notes(s *AppStore) Handle[state.NotesState] {
	return Use(s, func(st *state.AppState) *state.NotesState { return st.Notes })
}

// Highlights returns the highlights handle.
func Highlights(s *AppStore) Handle[state.HighlightsState] {
	return Use(s, func(st *state.AppState) *state.HighlightsState { return st.Highlights })
}

// UpcomingExams returns the upcoming-exams handle.
func UpcomingExams(s *AppStore) Handle[state.UpcomingExamsState] {
	return Use(s, func(st *state.AppState) *state.UpcomingExamsState { return st.UpcomingExams })
}
