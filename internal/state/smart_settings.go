package state

import "time"

// Smart settings action types.
const (
	ActionUpdateSmartSettings ActionType = "UPDATE_SMART_SETTINGS"
	ActionResetSmartSettings  ActionType = "RESET_SMART_SETTINGS"
	ActionOpenSettingsModal   ActionType = "OPEN_SETTINGS_MODAL"
	ActionCloseSettingsModal  ActionType = "CLOSE_SETTINGS_MODAL"
)

// Difficulty levels for generated material.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// SmartSettingsState holds study preferences.
type SmartSettingsState struct {
	DailyGoalMinutes       int    `json:"dailyGoalMinutes"`
	PreferredDifficulty    string `json:"preferredDifficulty"`
	AutoGenerateFlashcards bool   `json:"autoGenerateFlashcards"`
	Language               string `json:"language"`
	ReminderTime           string `json:"reminderTime,omitempty"` // HH:MM

	ShowSettingsModal bool `json:"showSettingsModal"`
}

// SettingsPatch is the UPDATE_SMART_SETTINGS payload. Nil fields are left
// unchanged.
type SettingsPatch struct {
	DailyGoalMinutes       *int    `json:"dailyGoalMinutes,omitempty"`
	PreferredDifficulty    *string `json:"preferredDifficulty,omitempty"`
	AutoGenerateFlashcards *bool   `json:"autoGenerateFlashcards,omitempty"`
	Language               *string `json:"language,omitempty"`
	ReminderTime           *string `json:"reminderTime,omitempty"`
}

func defaultSmartSettings() SmartSettingsState {
	return SmartSettingsState{
		DailyGoalMinutes:       30,
		PreferredDifficulty:    DifficultyMedium,
		AutoGenerateFlashcards: true,
		Language:               "en",
	}
}

func validDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

func validReminderTime(t string) bool {
	if t == "" {
		return true
	}
	_, err := time.Parse("15:04", t)
	return err == nil
}

// SmartSettingsDomain builds the smart-settings domain.
func SmartSettingsDomain(Deps) Domain[SmartSettingsState] {
	return Domain[SmartSettingsState]{
		Key:     KeySmartSettings,
		Initial: defaultSmartSettings,
		Reducer: reduceSmartSettings,
		Volatile: func(s SmartSettingsState) SmartSettingsState {
			s.ShowSettingsModal = false
			return s
		},
		Repair: func(s SmartSettingsState) SmartSettingsState {
			def := defaultSmartSettings()
			if s.DailyGoalMinutes <= 0 {
				s.DailyGoalMinutes = def.DailyGoalMinutes
			}
			if !validDifficulty(s.PreferredDifficulty) {
				s.PreferredDifficulty = def.PreferredDifficulty
			}
			if s.Language == "" {
				s.Language = def.Language
			}
			if !validReminderTime(s.ReminderTime) {
				s.ReminderTime = ""
			}
			return s
		},
	}
}

func reduceSmartSettings(s *SmartSettingsState, a Action) (*SmartSettingsState, error) {
	switch a.Type {
	case ActionUpdateSmartSettings:
		patch, err := payloadAs[SettingsPatch](a)
		if err != nil {
			return nil, err
		}
		next := *s
		if patch.DailyGoalMinutes != nil {
			if *patch.DailyGoalMinutes <= 0 {
				return nil, invalid(a, "daily goal must be positive")
			}
			next.DailyGoalMinutes = *patch.DailyGoalMinutes
		}
		if patch.PreferredDifficulty != nil {
			if !validDifficulty(*patch.PreferredDifficulty) {
				return nil, invalid(a, "unknown difficulty "+*patch.PreferredDifficulty)
			}
			next.PreferredDifficulty = *patch.PreferredDifficulty
		}
		if patch.AutoGenerateFlashcards != nil {
			next.AutoGenerateFlashcards = *patch.AutoGenerateFlashcards
		}
		if patch.Language != nil {
			if *patch.Language == "" {
				return nil, invalid(a, "language must not be empty")
			}
			next.Language = *patch.Language
		}
		if patch.ReminderTime != nil {
			if !validReminderTime(*patch.ReminderTime) {
				return nil, invalid(a, "reminder time must be HH:MM")
			}
			next.ReminderTime = *patch.ReminderTime
		}
		if next == *s {
			return s, nil
		}
		return &next, nil

	case ActionResetSmartSettings:
		next := defaultSmartSettings()
		next.ShowSettingsModal = s.ShowSettingsModal
		if next == *s {
			return s, nil
		}
		return &next, nil

	case ActionOpenSettingsModal, ActionCloseSettingsModal:
		open := a.Type == ActionOpenSettingsModal
		if s.ShowSettingsModal == open {
			return s, nil
		}
		next := *s
		next.ShowSettingsModal = open
		return &next, nil
	}

	return s, nil
}
