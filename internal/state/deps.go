package state

import (
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/notify"
)

// Deps are the only inputs reducers receive besides state and action.
type Deps struct {
	// Clock returns the current time in the zone used for calendar days.
	// Defaults to time.Now.
	Clock func() time.Time

	// Notifier receives user-visible notifications. Defaults to a no-op.
	Notifier notify.Notifier
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

func (d Deps) notify(title, message string) {
	if d.Notifier == nil {
		return
	}
	d.Notifier.Notify(title, message)
}

// dayLayout is the calendar day format used in persisted state.
const dayLayout = "2006-01-02"

// calendarDay formats t as a calendar day in t's own location.
func calendarDay(t time.Time) string {
	return t.Format(dayLayout)
}

// daysBetween returns the number of whole calendar days from `from` to
// `to`. Both are YYYY-MM-DD strings; the result is negative when `to` is
// earlier. DST shifts do not affect the result.
func daysBetween(from, to string) (int, error) {
	a, err := time.Parse(dayLayout, from)
	if err != nil {
		return 0, err
	}
	b, err := time.Parse(dayLayout, to)
	if err != nil {
		return 0, err
	}
	// Parsed in UTC, so every day is exactly 24 hours long.
	return int(b.Sub(a).Hours() / 24), nil
}
