package state

import (
	"fmt"
	"math"
	"time"
)

// Gamification action types.
const (
	ActionAddXP             ActionType = "ADD_XP"
	ActionCheckStreak       ActionType = "CHECK_STREAK"
	ActionUnlockAchievement ActionType = "UNLOCK_ACHIEVEMENT"
	ActionCloseLevelUpModal ActionType = "CLOSE_LEVEL_UP_MODAL"
	ActionResetProgress     ActionType = "RESET_PROGRESS"
)

// Achievement is an unlocked badge.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// Streak achievements, keyed by the streak length that unlocks them.
var streakAchievements = []struct {
	days        int
	achievement Achievement
}{
	{3, Achievement{ID: "streak-3", Title: "On Fire", Description: "Studied 3 days in a row"}},
	{7, Achievement{ID: "streak-7", Title: "Week Warrior", Description: "Studied 7 days in a row"}},
}

// GamificationState tracks experience, level, the daily streak and
// unlocked achievements.
type GamificationState struct {
	XP    int `json:"xp"`
	Level int `json:"level"`

	Streak int `json:"streak"`
	// LastStudiedDate is the last calendar day XP was earned.
	LastStudiedDate string `json:"lastStudiedDate,omitempty"`
	// StreakCreditedOn is the last calendar day the streak was credited.
	StreakCreditedOn string `json:"streakCreditedOn,omitempty"`

	Achievements []Achievement `json:"achievements"`

	ShowLevelUpModal bool `json:"showLevelUpModal"`
}

// HasAchievement reports whether the achievement is unlocked.
func (s *GamificationState) HasAchievement(id string) bool {
	return indexOf(s.Achievements, id, achievementID) >= 0
}

func achievementID(a Achievement) string { return a.ID }

// XPForLevel is the experience needed to advance from level to level+1:
// 100 * 2^(level-1). Levels below 1 are treated as 1.
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > 57 {
		return math.MaxInt
	}
	return 100 << (level - 1)
}

// GamificationDomain builds the gamification domain.
func GamificationDomain(deps Deps) Domain[GamificationState] {
	return Domain[GamificationState]{
		Key: KeyGamification,
		Initial: func() GamificationState {
			return GamificationState{Level: 1, Achievements: []Achievement{}}
		},
		Reducer: func(s *GamificationState, a Action) (*GamificationState, error) {
			return reduceGamification(deps, s, a)
		},
		Volatile: func(s GamificationState) GamificationState {
			s.ShowLevelUpModal = false
			return s
		},
		Repair: func(s GamificationState) GamificationState {
			if s.Level < 1 {
				s.Level = 1
			}
			s.XP = max(s.XP, 0)
			s.Streak = max(s.Streak, 0)
			if _, err := time.Parse(dayLayout, s.LastStudiedDate); err != nil {
				s.LastStudiedDate = ""
			}
			if _, err := time.Parse(dayLayout, s.StreakCreditedOn); err != nil {
				s.StreakCreditedOn = ""
			}
			s.Achievements = nonNil(s.Achievements)
			return s
		},
	}
}

func reduceGamification(deps Deps, s *GamificationState, a Action) (*GamificationState, error) {
	switch a.Type {
	case ActionAddXP:
		amount, err := payloadAs[int](a)
		if err != nil {
			return nil, err
		}
		if amount < 0 {
			return nil, invalid(a, "amount must not be negative")
		}
		next := *s
		next.LastStudiedDate = calendarDay(deps.now())
		if amount > math.MaxInt-next.XP {
			next.XP = math.MaxInt
		} else {
			next.XP += amount
		}
		for next.XP >= XPForLevel(next.Level) {
			next.XP -= XPForLevel(next.Level)
			next.Level++
			next.ShowLevelUpModal = true
			deps.notify("Level Up!", fmt.Sprintf("You reached level %d", next.Level))
		}
		if next.XP == s.XP && next.Level == s.Level && next.LastStudiedDate == s.LastStudiedDate {
			return s, nil
		}
		return &next, nil

	case ActionCheckStreak:
		return checkStreak(deps, s)

	case ActionUnlockAchievement:
		achievement, err := payloadAs[Achievement](a)
		if err != nil {
			return nil, err
		}
		if achievement.ID == "" {
			return nil, invalid(a, "achievement id is required")
		}
		if s.HasAchievement(achievement.ID) {
			return s, nil
		}
		next := *s
		next.Achievements = unlock(deps, s.Achievements, achievement)
		return &next, nil

	case ActionCloseLevelUpModal:
		if !s.ShowLevelUpModal {
			return s, nil
		}
		next := *s
		next.ShowLevelUpModal = false
		return &next, nil

	case ActionResetProgress:
		return &GamificationState{Level: 1, Achievements: []Achievement{}}, nil
	}

	return s, nil
}

// checkStreak recomputes the streak from the calendar-day gap between
// today and the last study day. The streak is credited at most once per
// calendar day, so repeated checks on the same day are no-ops.
func checkStreak(deps Deps, s *GamificationState) (*GamificationState, error) {
	if s.LastStudiedDate == "" {
		if s.Streak == 0 {
			return s, nil
		}
		next := *s
		next.Streak = 0
		return &next, nil
	}

	today := calendarDay(deps.now())
	gap, err := daysBetween(s.LastStudiedDate, today)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, ActionCheckStreak, err)
	}

	next := *s
	switch {
	case gap > 1:
		next.Streak = 0
	case gap == 0 && s.StreakCreditedOn != today:
		if credited, err := daysBetween(s.StreakCreditedOn, today); err == nil && credited == 1 {
			next.Streak++
		} else {
			next.Streak = 1
		}
		next.StreakCreditedOn = today
	}

	for _, sa := range streakAchievements {
		if next.Streak >= sa.days && !next.HasAchievement(sa.achievement.ID) {
			next.Achievements = unlock(deps, next.Achievements, sa.achievement)
		}
	}

	if next.Streak == s.Streak && next.StreakCreditedOn == s.StreakCreditedOn && len(next.Achievements) == len(s.Achievements) {
		return s, nil
	}
	return &next, nil
}

func unlock(deps Deps, unlocked []Achievement, achievement Achievement) []Achievement {
	if achievement.Title == "" {
		achievement.Title = achievement.ID
	}
	achievement.UnlockedAt = deps.now()
	out, _ := appendNew(unlocked, achievement, achievementID)
	deps.notify("Achievement Unlocked!", achievement.Title)
	return out
}
