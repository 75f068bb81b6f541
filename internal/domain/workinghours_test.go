package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

func weekdaySchedule() WeekSchedule {
	return WeekSchedule{
		"Monday":    {Open: "09:00", Close: "18:00"},
		"Tuesday":   {Open: "09:00", Close: "18:00"},
		"Wednesday": {Open: "09:00", Close: "18:00"},
		"Thursday":  {Open: "09:00", Close: "18:00"},
		"Friday":    {Open: "09:00", Close: "20:00"},
		"Saturday":  {Open: "10:00", Close: "16:00"},
		"Sunday":    {IsClosed: true},
	}
}

// 2025-03-10 is a Monday, 2025-03-16 is a Sunday
var (
	monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
)

func TestWeekSchedule_IsBookable(t *testing.T) {
	schedule := weekdaySchedule()

	tests := []struct {
		name    string
		date    time.Time
		time    types.TimeString
		wantErr error
	}{
		{name: "inside hours", date: monday, time: "14:00"},
		{name: "open boundary inclusive", date: monday, time: "09:00"},
		{name: "close boundary inclusive", date: monday, time: "18:00"},
		{name: "before opening", date: monday, time: "08:59", wantErr: ErrOutsideWorkingHours},
		{name: "after closing", date: monday, time: "18:01", wantErr: ErrOutsideWorkingHours},
		{name: "closed day", date: sunday, time: "12:00", wantErr: ErrBranchClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schedule.IsBookable(tt.date, tt.time)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWeekSchedule_IsBookable_ClosedDayMessage(t *testing.T) {
	schedule := weekdaySchedule()

	err := schedule.IsBookable(sunday, "12:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed on Sunday")
}

func TestWeekSchedule_IsBookable_OutsideHoursMessage(t *testing.T) {
	schedule := weekdaySchedule()

	err := schedule.IsBookable(monday, "22:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "09:00")
	assert.Contains(t, err.Error(), "18:00")
}

func TestWeekSchedule_MissingWeekdayTreatedAsClosed(t *testing.T) {
	schedule := WeekSchedule{
		"Monday": {Open: "09:00", Close: "18:00"},
	}

	err := schedule.IsBookable(sunday, "12:00")
	assert.ErrorIs(t, err, ErrBranchClosed)
}

func TestWeekSchedule_IsOpenOn(t *testing.T) {
	schedule := weekdaySchedule()

	assert.NoError(t, schedule.IsOpenOn(monday))
	assert.ErrorIs(t, schedule.IsOpenOn(sunday), ErrBranchClosed)
}

func TestIsFutureOrToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	// Сегодняшняя дата проходит независимо от времени суток
	assert.NoError(t, IsFutureOrToday(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), now))
	assert.NoError(t, IsFutureOrToday(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), now))
	assert.ErrorIs(t, IsFutureOrToday(time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), now), ErrPastDate)
}
