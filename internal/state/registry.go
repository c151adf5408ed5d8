package state

// NewRegistry composes all fourteen domains over AppState.
func NewRegistry(deps Deps) *Root {
	return Compose(
		Bind(ExamDomain(deps), func(st *AppState) **ExamState { return &st.Exam }),
		Bind(StudyAidsDomain(deps), func(st *AppState) **StudyAidsState { return &st.StudyAids }),
		Bind(StudyPlanDomain(deps), func(st *AppState) **StudyPlanState { return &st.StudyPlan }),
		Bind(TasksDomain(deps), func(st *AppState) **TasksState { return &st.Tasks }),
		Bind(GamificationDomain(deps), func(st *AppState) **GamificationState { return &st.Gamification }),
		Bind(ThemeDomain(deps), func(st *AppState) **ThemeState { return &st.Theme }),
		Bind(AIInteractionDomain(deps), func(st *AppState) **AIInteractionState { return &st.AIInteraction }),
		Bind(MusicDomain(deps), func(st *AppState) **MusicState { return &st.Music }),
		Bind(SmartSettingsDomain(deps), func(st *AppState) **SmartSettingsState { return &st.SmartSettings }),
		Bind(PomodoroDomain(deps), func(st *AppState) **PomodoroState { return &st.Pomodoro }),
		Bind(BookmarksDomain(deps), func(st *AppState) **BookmarksState { return &st.Bookmarks }),
		Bind(NotesDomain(deps), func(st *AppState) **NotesState { return &st.Notes }),
		Bind(HighlightsDomain(deps), func(st *AppState) **HighlightsState { return &st.Highlights }),
		Bind(UpcomingExamsDomain(deps), func(st *AppState) **UpcomingExamsState { return &st.UpcomingExams }),
	)
}
