package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/ptr"
)

func TestAppointment_EffectiveStatus(t *testing.T) {
	tests := []struct {
		name   string
		status AppointmentStatus
		seat   *int64
		want   EffectiveStatus
	}{
		{name: "bare pending", status: StatusPending, want: EffectivePending},
		{name: "seat-bound pending is approved", status: StatusPending, seat: ptr.Ptr(int64(3)), want: EffectiveApproved},
		{name: "in progress", status: StatusInProgress, seat: ptr.Ptr(int64(3)), want: EffectiveInProgress},
		{name: "completed", status: StatusCompleted, want: EffectiveCompleted},
		{name: "cancelled", status: StatusCancelled, want: EffectiveCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{
				Status:   tt.status,
				Services: []ServiceLine{{ServiceID: 1, SeatID: tt.seat}},
			}
			assert.Equal(t, tt.want, a.EffectiveStatus())
		})
	}
}

func TestAppointment_CurrentSeat(t *testing.T) {
	t.Run("no seat", func(t *testing.T) {
		a := &Appointment{Services: []ServiceLine{{ServiceID: 1}, {ServiceID: 2}}}
		seat, err := a.CurrentSeat()
		require.NoError(t, err)
		assert.Nil(t, seat)
	})

	t.Run("all lines agree", func(t *testing.T) {
		a := &Appointment{Services: []ServiceLine{
			{ServiceID: 1, SeatID: ptr.Ptr(int64(3))},
			{ServiceID: 2, SeatID: ptr.Ptr(int64(3))},
			{ServiceID: 3}, // строка без места не участвует
		}}
		seat, err := a.CurrentSeat()
		require.NoError(t, err)
		require.NotNil(t, seat)
		assert.Equal(t, int64(3), *seat)
	})

	t.Run("lines disagree", func(t *testing.T) {
		a := &Appointment{Services: []ServiceLine{
			{ServiceID: 1, SeatID: ptr.Ptr(int64(3))},
			{ServiceID: 2, SeatID: ptr.Ptr(int64(5))},
		}}
		_, err := a.CurrentSeat()
		assert.ErrorIs(t, err, ErrSeatBindingMismatch)
	})
}

func TestAppointment_TerminalImmutable(t *testing.T) {
	for _, status := range TerminalStatuses {
		a := &Appointment{Status: status}
		assert.False(t, a.CanBeEdited(), "status %s must not be editable", status)
	}

	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeDeleted())
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeDeleted())
	assert.True(t, (&Appointment{Status: StatusCancelled}).CanBeDeleted())
	assert.False(t, (&Appointment{Status: StatusInProgress}).CanBeDeleted())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("pending"))
	assert.True(t, ValidStatus("in_progress"))
	assert.False(t, ValidStatus("approved"), "approved is derived, never a wire status")
	assert.False(t, ValidStatus("no_show"))
}
