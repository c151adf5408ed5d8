package state

import (
	"slices"
	"strings"
	"time"
)

// Upcoming exam action types.
const (
	ActionAddUpcomingExam    ActionType = "ADD_UPCOMING_EXAM"
	ActionDeleteUpcomingExam ActionType = "DELETE_UPCOMING_EXAM"
)

// UpcomingExam is a real-world exam on the calendar.
type UpcomingExam struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject,omitempty"`
	Date    string `json:"date"` // YYYY-MM-DD
}

// UpcomingExamsState holds calendar exams in insertion order.
type UpcomingExamsState struct {
	Exams []UpcomingExam `json:"exams"`
}

// Sorted returns the exams ordered by date, earliest first.
func (s *UpcomingExamsState) Sorted() []UpcomingExam {
	out := slices.Clone(s.Exams)
	// YYYY-MM-DD sorts lexically.
	slices.SortStableFunc(out, func(a, b UpcomingExam) int { return strings.Compare(a.Date, b.Date) })
	return out
}

// DaysUntil returns the calendar days from now until the exam, negative
// once it has passed.
func DaysUntil(exam UpcomingExam, now time.Time) (int, error) {
	return daysBetween(calendarDay(now), exam.Date)
}

func upcomingExamID(e UpcomingExam) string { return e.ID }

func validExamDate(date string) bool {
	_, err := time.Parse(dayLayout, date)
	return err == nil
}

// UpcomingExamsDomain builds the upcoming-exams domain.
func UpcomingExamsDomain(Deps) Domain[UpcomingExamsState] {
	return Domain[UpcomingExamsState]{
		Key:     KeyUpcomingExams,
		Initial: func() UpcomingExamsState { return UpcomingExamsState{Exams: []UpcomingExam{}} },
		Reducer: reduceUpcomingExams,
		Repair: func(s UpcomingExamsState) UpcomingExamsState {
			exams := make([]UpcomingExam, 0, len(s.Exams))
			for _, e := range s.Exams {
				if e.ID != "" && validExamDate(e.Date) {
					exams = append(exams, e)
				}
			}
			s.Exams = exams
			return s
		},
	}
}

func reduceUpcomingExams(s *UpcomingExamsState, a Action) (*UpcomingExamsState, error) {
	switch a.Type {
	case ActionAddUpcomingExam:
		exam, err := payloadAs[UpcomingExam](a)
		if err != nil {
			return nil, err
		}
		if exam.ID == "" {
			return nil, invalid(a, "exam id is required")
		}
		if !validExamDate(exam.Date) {
			return nil, invalid(a, "date must be YYYY-MM-DD")
		}
		return &UpcomingExamsState{Exams: upsert(s.Exams, exam, upcomingExamID)}, nil

	case ActionDeleteUpcomingExam:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		exams, removed := removeWhere(s.Exams, func(e UpcomingExam) bool { return e.ID == id })
		if !removed {
			return s, nil
		}
		return &UpcomingExamsState{Exams: exams}, nil
	}

	return s, nil
}
