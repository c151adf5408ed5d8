package state

// DomainKey names one slice of the application state. The key doubles as
// the top-level JSON key in the persisted blob.
type DomainKey string

// The fourteen domains.
const (
	KeyExam          DomainKey = "exam"
	KeyStudyAids     DomainKey = "study-aids"
	KeyStudyPlan     DomainKey = "study-plan"
	KeyTasks         DomainKey = "tasks"
	KeyGamification  DomainKey = "gamification"
	KeyTheme         DomainKey = "theme"
	KeyAIInteraction DomainKey = "ai-interaction"
	KeyMusic         DomainKey = "music"
	KeySmartSettings DomainKey = "smart-settings"
	KeyPomodoro      DomainKey = "pomodoro"
	KeyBookmarks     DomainKey = "bookmarks"
	KeyNotes         DomainKey = "notes"
	KeyHighlights    DomainKey = "highlights"
	KeyUpcomingExams DomainKey = "upcoming-exams"
)

// DomainKeys lists every domain in a stable order.
var DomainKeys = []DomainKey{
	KeyExam,
	KeyStudyAids,
	KeyStudyPlan,
	KeyTasks,
	KeyGamification,
	KeyTheme,
	KeyAIInteraction,
	KeyMusic,
	KeySmartSettings,
	KeyPomodoro,
	KeyBookmarks,
	KeyNotes,
	KeyHighlights,
	KeyUpcomingExams,
}

// AppState is the single source of truth. Every field is non-nil once the
// state has been built by Root.Default or Root.Rehydrate. Values are never
// modified in place: a transition produces a new AppState that shares the
// pointers of every domain that did not change.
type AppState struct {
	Exam          *ExamState          `json:"exam"`
	StudyAids     *StudyAidsState     `json:"study-aids"`
	StudyPlan     *StudyPlanState     `json:"study-plan"`
	Tasks         *TasksState         `json:"tasks"`
	Gamification  *GamificationState  `json:"gamification"`
	Theme         *ThemeState         `json:"theme"`
	AIInteraction *AIInteractionState `json:"ai-interaction"`
	Music         *MusicState         `json:"music"`
	SmartSettings *SmartSettingsState `json:"smart-settings"`
	Pomodoro      *PomodoroState      `json:"pomodoro"`
	Bookmarks     *BookmarksState     `json:"bookmarks"`
	Notes         *NotesState         `json:"notes"`
	Highlights    *HighlightsState    `json:"highlights"`
	UpcomingExams *UpcomingExamsState `json:"upcoming-exams"`
}
