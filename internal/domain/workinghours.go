package domain

import (
	"fmt"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// DaySchedule working hours of a branch for one weekday
type DaySchedule struct {
	Open     types.TimeString
	Close    types.TimeString
	IsClosed bool
}

// WeekSchedule per-weekday working hours of a branch, keyed by the weekday
// name ("Monday".."Sunday"). A missing entry is treated as a closed day.
// Read-only configuration: fetched per create/edit session, never mutated here.
type WeekSchedule map[string]DaySchedule

// ForDate returns the schedule entry for the weekday of the given date
func (w WeekSchedule) ForDate(date time.Time) (DaySchedule, bool) {
	day, ok := w[date.Weekday().String()]
	return day, ok
}

// IsOpenOn reports whether the branch is open at all on the weekday of the
// given date. Used to keep the time picker disabled on closed days.
func (w WeekSchedule) IsOpenOn(date time.Time) error {
	day, ok := w.ForDate(date)
	if !ok || day.IsClosed {
		return fmt.Errorf("%w: closed on %s", ErrBranchClosed, date.Weekday())
	}
	return nil
}

// IsBookable reports whether booking activity is permitted for the branch on
// the given date at the given time. The open and close bounds are inclusive.
func (w WeekSchedule) IsBookable(date time.Time, t types.TimeString) error {
	day, ok := w.ForDate(date)
	if !ok || day.IsClosed {
		return fmt.Errorf("%w: closed on %s", ErrBranchClosed, date.Weekday())
	}
	if t.IsBefore(day.Open) || t.IsAfter(day.Close) {
		return fmt.Errorf("%w: outside working hours %s–%s", ErrOutsideWorkingHours, day.Open, day.Close)
	}
	return nil
}

// IsFutureOrToday rejects dates strictly before the current calendar day.
// Comparison is at day granularity in the service's local time zone;
// the time of day is ignored.
func IsFutureOrToday(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrPastDate
	}
	return nil
}
