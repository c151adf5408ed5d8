package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBookmarkIsIdempotent(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	root := NewRegistry(deps)
	add := NewAction(ActionAddBookmark, Bookmark{QuestionID: "q-42", ExamID: "e1"})

	once := dispatch(t, root, root.Default(), add)
	twice, err := root.Reduce(once, add)
	require.NoError(t, err)

	assert.Same(t, once, twice)
	assert.Len(t, twice.Bookmarks.Bookmarks, 1)
	assert.True(t, twice.Bookmarks.IsBookmarked("q-42"))

	removed := dispatch(t, root, twice, NewAction(ActionRemoveBookmark, "q-42"))
	assert.False(t, removed.Bookmarks.IsBookmarked("q-42"))
}

func TestTasks(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := TasksDomain(deps)
	add := NewAction(ActionAddTask, &Task{ID: "t1", Title: "Flashcards"})

	s := reduceAll(t, d, d.Default(), add)
	dup, err := d.Reduce(s, add)
	require.NoError(t, err)
	assert.Same(t, s, dup)
	assert.True(t, s.Tasks[0].CreatedAt.Equal(testNow))

	s = reduceAll(t, d, s,
		NewAction(ActionAddTask, Task{ID: "t2", Title: "Past paper"}),
		NewAction(ActionToggleTask, "t1"),
	)
	require.Len(t, s.Pending(), 1)
	assert.Equal(t, "t2", s.Pending()[0].ID)

	s = reduceAll(t, d, s, NewAction(ActionUpdateTask, Task{ID: "t2", Title: "Two past papers"}))
	assert.Equal(t, "Two past papers", s.Tasks[1].Title)

	s = reduceAll(t, d, s, NewAction(ActionClearCompletedTasks, nil))
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "t2", s.Tasks[0].ID)

	_, err = d.Reduce(s, NewAction(ActionAddTask, Task{Title: "no id"}))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestStudyAidsDecks(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := StudyAidsDomain(deps)

	deck, err := domain.NewFlashcardDeck("Biology", "notes.pdf", [][2]string{{"ATP?", "Energy"}, {"DNA?", "Genes"}}, testNow)
	require.NoError(t, err)

	s := reduceAll(t, d, d.Default(), NewAction(ActionSetStudyAidsLoading, true), NewAction(ActionAddFlashcardDeck, deck))
	assert.False(t, s.IsLoading)
	require.Len(t, s.Decks, 1)

	dup, err := d.Reduce(s, NewAction(ActionAddFlashcardDeck, deck))
	require.NoError(t, err)
	assert.Same(t, s, dup)

	card := deck.Cards[1]
	card.Interval = 6
	changed, err := deck.WithCard(card)
	require.NoError(t, err)
	updated := reduceAll(t, d, s, NewAction(ActionUpdateFlashcardDeck, changed))
	got, ok := updated.Deck(deck.ID)
	require.True(t, ok)
	assert.Equal(t, 6, got.Cards[1].Interval)
	assert.Equal(t, deck.Cards[0].ID, got.Cards[0].ID, "card order is preserved")
	assert.Equal(t, 1, s.Decks[0].Cards[1].Interval, "previous state must not be modified")

	_, err = d.Reduce(s, NewAction(ActionAddFlashcardDeck, domain.FlashcardDeck{Title: "no id"}))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	gone := reduceAll(t, d, updated, NewAction(ActionDeleteFlashcardDeck, deck.ID))
	assert.Empty(t, gone.Decks)
}

func TestStudyAidsUpdateFlashcard(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := StudyAidsDomain(deps)

	deck, err := domain.NewFlashcardDeck("Biology", "", [][2]string{{"ATP?", "Energy"}, {"DNA?", "Genes"}}, testNow)
	require.NoError(t, err)
	s := reduceAll(t, d, d.Default(), NewAction(ActionAddFlashcardDeck, deck))

	// Both updates start from the same read of the deck; neither is lost.
	first := deck.Cards[0]
	first.Interval = 3
	second := deck.Cards[1]
	second.Interval = 7
	s = reduceAll(t, d, s,
		NewAction(ActionUpdateFlashcard, FlashcardUpdate{DeckID: deck.ID, Card: first}),
		NewAction(ActionUpdateFlashcard, FlashcardUpdate{DeckID: deck.ID, Card: second}))

	got, ok := s.Deck(deck.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Cards[0].Interval)
	assert.Equal(t, 7, got.Cards[1].Interval)

	_, err = d.Reduce(s, NewAction(ActionUpdateFlashcard, FlashcardUpdate{DeckID: "missing", Card: first}))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, domain.ErrDeckNotFound)

	stranger := first
	stranger.ID = "missing"
	_, err = d.Reduce(s, NewAction(ActionUpdateFlashcard, FlashcardUpdate{DeckID: deck.ID, Card: stranger}))
	assert.ErrorIs(t, err, domain.ErrCardNotFound)

	broken := first
	broken.Interval = 0
	_, err = d.Reduce(s, NewAction(ActionUpdateFlashcard, FlashcardUpdate{DeckID: deck.ID, Card: broken}))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestExamFlow(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := ExamDomain(deps)
	exam := Exam{
		ID:    "e1",
		Title: "Cell biology",
		Questions: []Question{
			{ID: "q1", Text: "Powerhouse?", Options: []string{"Nucleus", "Mitochondria"}, CorrectIndex: 1},
			{ID: "q2", Text: "Genetic code?", Options: []string{"DNA", "ATP"}, CorrectIndex: 0},
		},
	}

	s := reduceAll(t, d, d.Default(),
		NewAction(ActionStartExamGeneration, nil),
		NewAction(ActionSetExam, exam),
		NewAction(ActionAnswerQuestion, Answer{QuestionID: "q1", OptionIndex: 1}),
		NewAction(ActionAnswerQuestion, Answer{QuestionID: "q2", OptionIndex: 1}),
	)
	assert.False(t, s.IsLoading)
	assert.Equal(t, "e1", s.ActiveExamID)

	_, err := d.Reduce(s, NewAction(ActionAnswerQuestion, Answer{QuestionID: "q1", OptionIndex: 5}))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	s = reduceAll(t, d, s, NewAction(ActionSubmitExam, nil))
	require.Len(t, s.Results, 1)
	assert.Equal(t, 1, s.Results[0].Correct)
	assert.Equal(t, 50.0, s.Results[0].Percentage)
	assert.True(t, s.ShowResultsModal)
	assert.Empty(t, s.ActiveExamID)

	s = reduceAll(t, d, s, NewAction(ActionCloseResultsModal, nil), NewAction(ActionDeleteExam, "e1"))
	assert.False(t, s.ShowResultsModal)
	assert.Empty(t, s.Exams)
	assert.Len(t, s.Results, 1)
}

func TestStudyPlan(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := StudyPlanDomain(deps)
	plan := StudyPlan{ID: "p1", Goal: "Pass finals", Items: []PlanItem{
		{ID: "i1", Day: "2026-03-15", Topic: "Cells", DurationMinutes: 30},
		{ID: "i2", Day: "2026-03-16", Topic: "Genetics", DurationMinutes: 45},
	}}

	s := reduceAll(t, d, d.Default(), NewAction(ActionSetPlanLoading, true), NewAction(ActionSetPlan, plan))
	assert.False(t, s.IsLoading)
	assert.Zero(t, s.Plan.Completion())

	s = reduceAll(t, d, s, NewAction(ActionTogglePlanItem, "i1"))
	assert.Equal(t, 0.5, s.Plan.Completion())
	assert.False(t, plan.Items[0].Completed, "payload must not be modified")

	s = reduceAll(t, d, s, NewAction(ActionClearPlan, nil))
	assert.Nil(t, s.Plan)
}

func TestNotesKeepCreationTime(t *testing.T) {
	t.Parallel()
	deps, _, clk := testDeps()
	d := NotesDomain(deps)

	s := reduceAll(t, d, d.Default(), NewAction(ActionSaveNote, Note{ID: "n1", Content: "draft"}))
	clk.Advance(time.Hour)
	s = reduceAll(t, d, s, NewAction(ActionSaveNote, Note{ID: "n1", Content: "final"}))

	require.Len(t, s.Notes, 1)
	note := s.Notes[0]
	assert.Equal(t, "final", note.Content)
	assert.True(t, note.CreatedAt.Equal(testNow))
	assert.True(t, note.UpdatedAt.Equal(testNow.Add(time.Hour)))

	s = reduceAll(t, d, s, NewAction(ActionDeleteNote, "n1"))
	assert.Empty(t, s.Notes)
}

func TestHighlights(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := HighlightsDomain(deps)

	s := reduceAll(t, d, d.Default(),
		NewAction(ActionAddHighlight, Highlight{ID: "h2", SourceID: "doc", Start: 40, End: 50}),
		NewAction(ActionAddHighlight, Highlight{ID: "h1", SourceID: "doc", Start: 10, End: 20}),
		NewAction(ActionAddHighlight, Highlight{ID: "h3", SourceID: "other", Start: 0, End: 5}),
	)

	forDoc := s.ForSource("doc")
	require.Len(t, forDoc, 2)
	assert.Equal(t, "h1", forDoc[0].ID)

	_, err := d.Reduce(s, NewAction(ActionAddHighlight, Highlight{ID: "h4", SourceID: "doc", Start: 9, End: 3}))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	s = reduceAll(t, d, s, NewAction(ActionClearSourceHighlights, "doc"))
	require.Len(t, s.Highlights, 1)
	assert.Equal(t, "h3", s.Highlights[0].ID)
}

func TestUpcomingExams(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := UpcomingExamsDomain(deps)

	s := reduceAll(t, d, d.Default(),
		NewAction(ActionAddUpcomingExam, UpcomingExam{ID: "chem", Title: "Chemistry", Date: "2026-04-02"}),
		NewAction(ActionAddUpcomingExam, UpcomingExam{ID: "bio", Title: "Biology", Date: "2026-03-20"}),
	)

	sorted := s.Sorted()
	require.Len(t, sorted, 2)
	assert.Equal(t, "bio", sorted[0].ID)
	assert.Equal(t, "chem", s.Exams[0].ID, "insertion order is kept")

	days, err := DaysUntil(sorted[0], testNow)
	require.NoError(t, err)
	assert.Equal(t, 6, days)

	_, err = d.Reduce(s, NewAction(ActionAddUpcomingExam, UpcomingExam{ID: "x", Date: "next week"}))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestTheme(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := ThemeDomain(deps)

	s := reduceAll(t, d, d.Default(), NewAction(ActionToggleTheme, nil))
	assert.Equal(t, ThemeDark, s.Mode)
	s = reduceAll(t, d, s, NewAction(ActionToggleTheme, nil), NewAction(ActionSetFontScale, 4.0))
	assert.Equal(t, ThemeLight, s.Mode)
	assert.Equal(t, MaxFontScale, s.FontScale)

	_, err := d.Reduce(s, NewAction(ActionSetAccentColor, "blue"))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	_, err = d.Reduce(s, NewAction(ActionSetThemeMode, ThemeMode("sepia")))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestAIConversationIsCapped(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := AIInteractionDomain(deps)

	s := reduceAll(t, d, d.Default(), NewAction(ActionSetAIThinking, true))
	for i := 0; i < MaxAIMessages+5; i++ {
		s = reduceAll(t, d, s, NewAction(ActionAddAIMessage, AIMessage{ID: fmt.Sprint(i), Role: RoleAssistant, Content: "hi"}))
	}

	require.Len(t, s.Messages, MaxAIMessages)
	assert.Equal(t, "5", s.Messages[0].ID)
	assert.False(t, s.IsThinking)

	_, err := d.Reduce(s, NewAction(ActionAddAIMessage, AIMessage{Role: "system"}))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	s = reduceAll(t, d, s, NewAction(ActionClearAIConversation, nil))
	assert.Empty(t, s.Messages)
}

func TestMusic(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := MusicDomain(deps)

	s := reduceAll(t, d, d.Default(),
		NewAction(ActionAddTrack, Track{ID: "rain", Title: "Rain"}),
		NewAction(ActionPlayTrack, "rain"),
		NewAction(ActionSetVolume, 1.7),
	)
	assert.True(t, s.IsPlaying)
	assert.Equal(t, 1.0, s.Volume)

	_, err := d.Reduce(s, NewAction(ActionPlayTrack, "missing"))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	s = reduceAll(t, d, s, NewAction(ActionRemoveTrack, "rain"))
	assert.False(t, s.IsPlaying)
	assert.Empty(t, s.CurrentTrackID)
}

func TestSmartSettings(t *testing.T) {
	t.Parallel()
	deps, _, _ := testDeps()
	d := SmartSettingsDomain(deps)
	goal := 50
	difficulty := DifficultyHard

	s := reduceAll(t, d, d.Default(), NewAction(ActionUpdateSmartSettings, SettingsPatch{
		DailyGoalMinutes:    &goal,
		PreferredDifficulty: &difficulty,
	}))
	assert.Equal(t, 50, s.DailyGoalMinutes)
	assert.Equal(t, DifficultyHard, s.PreferredDifficulty)
	assert.Equal(t, "en", s.Language)

	bad := "25:99"
	_, err := d.Reduce(s, NewAction(ActionUpdateSmartSettings, SettingsPatch{ReminderTime: &bad}))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	s = reduceAll(t, d, s, NewAction(ActionOpenSettingsModal, nil), NewAction(ActionResetSmartSettings, nil))
	assert.Equal(t, 30, s.DailyGoalMinutes)
	assert.True(t, s.ShowSettingsModal)
}
