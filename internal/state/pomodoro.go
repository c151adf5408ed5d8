package state

// Pomodoro action types.
const (
	ActionToggleActive    ActionType = "TOGGLE_ACTIVE"
	ActionTick            ActionType = "TICK"
	ActionSetPomodoroMode ActionType = "SET_POMODORO_MODE"
	ActionResetTimer      ActionType = "RESET_TIMER"
	ActionSetDurations    ActionType = "SET_DURATIONS"
)

// PomodoroMode is the phase of the timer.
type PomodoroMode string

// Pomodoro modes.
const (
	ModeWork       PomodoroMode = "work"
	ModeShortBreak PomodoroMode = "shortBreak"
	ModeLongBreak  PomodoroMode = "longBreak"
)

const maxDurationMinutes = 180

// PomodoroDurations is the SET_DURATIONS payload.
type PomodoroDurations struct {
	WorkMinutes             int `json:"workMinutes"`
	ShortBreakMinutes       int `json:"shortBreakMinutes"`
	LongBreakMinutes        int `json:"longBreakMinutes"`
	SessionsBeforeLongBreak int `json:"sessionsBeforeLongBreak"`
}

func (d PomodoroDurations) valid() bool {
	for _, m := range []int{d.WorkMinutes, d.ShortBreakMinutes, d.LongBreakMinutes} {
		if m < 1 || m > maxDurationMinutes {
			return false
		}
	}
	return d.SessionsBeforeLongBreak >= 1
}

// PomodoroState is the focus timer. TimeLeft is in seconds.
type PomodoroState struct {
	Mode              PomodoroMode `json:"mode"`
	TimeLeft          int          `json:"timeLeft"`
	CompletedSessions int          `json:"completedSessions"`
	PomodoroDurations

	IsActive bool `json:"isActive"`
}

// Seconds returns the full length of mode.
func (s *PomodoroState) Seconds(mode PomodoroMode) int {
	switch mode {
	case ModeShortBreak:
		return s.ShortBreakMinutes * 60
	case ModeLongBreak:
		return s.LongBreakMinutes * 60
	default:
		return s.WorkMinutes * 60
	}
}

func validMode(m PomodoroMode) bool {
	return m == ModeWork || m == ModeShortBreak || m == ModeLongBreak
}

var defaultDurations = PomodoroDurations{
	WorkMinutes:             25,
	ShortBreakMinutes:       5,
	LongBreakMinutes:        15,
	SessionsBeforeLongBreak: 4,
}

func defaultPomodoro() PomodoroState {
	s := PomodoroState{Mode: ModeWork, PomodoroDurations: defaultDurations}
	s.TimeLeft = s.Seconds(ModeWork)
	return s
}

// PomodoroDomain builds the pomodoro domain.
func PomodoroDomain(deps Deps) Domain[PomodoroState] {
	return Domain[PomodoroState]{
		Key:     KeyPomodoro,
		Initial: defaultPomodoro,
		Reducer: func(s *PomodoroState, a Action) (*PomodoroState, error) {
			return reducePomodoro(deps, s, a)
		},
		Volatile: func(s PomodoroState) PomodoroState {
			s.IsActive = false
			return s
		},
		Repair: func(s PomodoroState) PomodoroState {
			if !s.PomodoroDurations.valid() {
				s.PomodoroDurations = defaultDurations
			}
			if !validMode(s.Mode) {
				s.Mode = ModeWork
			}
			if s.TimeLeft <= 0 || s.TimeLeft > s.Seconds(s.Mode) {
				s.TimeLeft = s.Seconds(s.Mode)
			}
			s.CompletedSessions = max(s.CompletedSessions, 0)
			return s
		},
	}
}

func reducePomodoro(deps Deps, s *PomodoroState, a Action) (*PomodoroState, error) {
	switch a.Type {
	case ActionToggleActive:
		next := *s
		next.IsActive = !s.IsActive
		return &next, nil

	case ActionTick:
		seconds := 1
		if a.Payload != nil {
			n, err := payloadAs[int](a)
			if err != nil {
				return nil, err
			}
			if n < 1 {
				return nil, invalid(a, "tick must be at least one second")
			}
			seconds = n
		}
		if !s.IsActive {
			return s, nil
		}
		next := *s
		next.TimeLeft -= seconds
		if next.TimeLeft > 0 {
			return &next, nil
		}
		completePhase(deps, &next)
		return &next, nil

	case ActionSetPomodoroMode:
		mode, err := payloadAs[PomodoroMode](a)
		if err != nil {
			return nil, err
		}
		if !validMode(mode) {
			return nil, invalid(a, "unknown mode "+string(mode))
		}
		next := *s
		next.Mode = mode
		next.TimeLeft = next.Seconds(mode)
		next.IsActive = false
		if next == *s {
			return s, nil
		}
		return &next, nil

	case ActionResetTimer:
		next := *s
		next.TimeLeft = next.Seconds(s.Mode)
		next.IsActive = false
		if next == *s {
			return s, nil
		}
		return &next, nil

	case ActionSetDurations:
		durations, err := payloadAs[PomodoroDurations](a)
		if err != nil {
			return nil, err
		}
		if !durations.valid() {
			return nil, invalid(a, "durations out of range")
		}
		next := *s
		next.PomodoroDurations = durations
		if s.IsActive {
			next.TimeLeft = min(s.TimeLeft, next.Seconds(s.Mode))
		} else {
			next.TimeLeft = next.Seconds(s.Mode)
		}
		if next == *s {
			return s, nil
		}
		return &next, nil
	}

	return s, nil
}

// completePhase stops the timer and moves to the next mode. Every
// SessionsBeforeLongBreak-th work session is followed by a long break.
func completePhase(deps Deps, s *PomodoroState) {
	s.IsActive = false
	if s.Mode == ModeWork {
		s.CompletedSessions++
		if s.CompletedSessions%s.SessionsBeforeLongBreak == 0 {
			s.Mode = ModeLongBreak
		} else {
			s.Mode = ModeShortBreak
		}
		deps.notify("Focus session complete", "Time for a break.")
	} else {
		s.Mode = ModeWork
		deps.notify("Break over", "Ready to focus again?")
	}
	s.TimeLeft = s.Seconds(s.Mode)
}
