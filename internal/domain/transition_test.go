package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/ptr"
)

func pendingAppointment() *Appointment {
	return &Appointment{
		ID:         10,
		CustomerID: 7,
		Status:     StatusPending,
		Services:   []ServiceLine{{ServiceID: 1, Name: "Haircut", Price: 150}},
	}
}

func approvedAppointment(seatID int64) *Appointment {
	a := pendingAppointment()
	a.Services[0].SeatID = ptr.Ptr(seatID)
	return a
}

func inProgressAppointment(seatID int64) *Appointment {
	a := approvedAppointment(seatID)
	a.Status = StatusInProgress
	return a
}

func TestApprove(t *testing.T) {
	tr, err := Approve(pendingAppointment(), 3)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, tr.Status, "approval keeps the persisted status pending")
	require.NotNil(t, tr.SeatID)
	assert.Equal(t, int64(3), *tr.SeatID)
	assert.Nil(t, tr.StaffID, "approval clears staff")
	assert.Nil(t, tr.ReleaseSeatID)
}

func TestApprove_Guards(t *testing.T) {
	t.Run("seat required", func(t *testing.T) {
		_, err := Approve(pendingAppointment(), 0)
		assert.ErrorIs(t, err, ErrSeatRequired)
	})

	t.Run("services required", func(t *testing.T) {
		a := pendingAppointment()
		a.Services = nil
		_, err := Approve(a, 3)
		assert.ErrorIs(t, err, ErrNoServices)
	})

	t.Run("already approved", func(t *testing.T) {
		_, err := Approve(approvedAppointment(3), 4)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("terminal", func(t *testing.T) {
		a := pendingAppointment()
		a.Status = StatusCompleted
		_, err := Approve(a, 3)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestStartService(t *testing.T) {
	t.Run("same seat", func(t *testing.T) {
		seat := &Seat{ID: 3, Status: SeatAvailable}
		tr, err := StartService(approvedAppointment(3), seat)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, tr.Status)
		assert.Equal(t, int64(3), *tr.SeatID)
		assert.Nil(t, tr.ReleaseSeatID, "no release when the seat does not change")
	})

	t.Run("different seat releases previous", func(t *testing.T) {
		seat := &Seat{ID: 5, Status: SeatAvailable}
		tr, err := StartService(approvedAppointment(3), seat)
		require.NoError(t, err)

		assert.Equal(t, int64(5), *tr.SeatID)
		require.NotNil(t, tr.ReleaseSeatID)
		assert.Equal(t, int64(3), *tr.ReleaseSeatID)
	})

	t.Run("seat held by another appointment", func(t *testing.T) {
		seat := &Seat{ID: 5, Status: SeatOccupied, ActiveAppointmentID: ptr.Ptr(int64(99))}
		_, err := StartService(approvedAppointment(3), seat)
		assert.ErrorIs(t, err, ErrSeatOccupied)
	})

	t.Run("seat held by same appointment is fine", func(t *testing.T) {
		seat := &Seat{ID: 3, Status: SeatOccupied, ActiveAppointmentID: ptr.Ptr(int64(10))}
		_, err := StartService(approvedAppointment(3), seat)
		assert.NoError(t, err)
	})

	t.Run("seat under maintenance rejected even when free", func(t *testing.T) {
		seat := &Seat{ID: 5, Status: SeatMaintenance}
		_, err := StartService(approvedAppointment(3), seat)
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})

	t.Run("seat being cleaned rejected even when free", func(t *testing.T) {
		seat := &Seat{ID: 5, Status: SeatCleaning}
		_, err := StartService(approvedAppointment(3), seat)
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})

	t.Run("bare pending cannot start", func(t *testing.T) {
		seat := &Seat{ID: 3, Status: SeatAvailable}
		_, err := StartService(pendingAppointment(), seat)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}

func TestMoveSeat(t *testing.T) {
	t.Run("in_progress keeps status", func(t *testing.T) {
		seat := &Seat{ID: 8, Status: SeatAvailable}
		tr, err := MoveSeat(inProgressAppointment(3), seat)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, tr.Status)
		assert.Equal(t, int64(8), *tr.SeatID)
		assert.Equal(t, int64(3), *tr.ReleaseSeatID)
	})

	t.Run("approved keeps pending status", func(t *testing.T) {
		seat := &Seat{ID: 8, Status: SeatAvailable}
		tr, err := MoveSeat(approvedAppointment(3), seat)
		require.NoError(t, err)

		assert.Equal(t, StatusPending, tr.Status)
	})

	t.Run("bare pending rejected", func(t *testing.T) {
		seat := &Seat{ID: 8, Status: SeatAvailable}
		_, err := MoveSeat(pendingAppointment(), seat)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("seat being cleaned rejected even when free", func(t *testing.T) {
		seat := &Seat{ID: 8, Status: SeatCleaning}
		_, err := MoveSeat(inProgressAppointment(3), seat)
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})

	t.Run("seat under maintenance rejected even when free", func(t *testing.T) {
		seat := &Seat{ID: 8, Status: SeatMaintenance}
		_, err := MoveSeat(inProgressAppointment(3), seat)
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})
}

func TestFinishTransitions(t *testing.T) {
	tests := []struct {
		name       string
		transition func(*Appointment) (*Transition, error)
		wantStatus AppointmentStatus
	}{
		{name: "complete", transition: Complete, wantStatus: StatusCompleted},
		{name: "cancel", transition: Cancel, wantStatus: StatusCancelled},
		{name: "release to pending", transition: ReleaseToPending, wantStatus: StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := tt.transition(inProgressAppointment(3))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, tr.Status)
			assert.Nil(t, tr.SeatID, "seat binding is cleared")
			require.NotNil(t, tr.ReleaseSeatID)
			assert.Equal(t, int64(3), *tr.ReleaseSeatID)
		})

		t.Run(tt.name+" rejected outside in_progress", func(t *testing.T) {
			_, err := tt.transition(pendingAppointment())
			assert.ErrorIs(t, err, ErrIllegalTransition)

			terminal := pendingAppointment()
			terminal.Status = StatusCancelled
			_, err = tt.transition(terminal)
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

// Прямые переходы мимо in_progress запрещены: завершить можно только
// запись, прошедшую через карту мест.
func TestNoDirectJumpToCompleted(t *testing.T) {
	_, err := Complete(pendingAppointment())
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = Complete(approvedAppointment(3))
	assert.ErrorIs(t, err, ErrIllegalTransition)

	cancelled := pendingAppointment()
	cancelled.Status = StatusCancelled
	_, err = Complete(cancelled)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

// Ни один вычисленный переход не удерживает два места одновременно:
// при смене места старое всегда попадает в ReleaseSeatID.
func TestSingleSeatInvariant(t *testing.T) {
	seat := &Seat{ID: 9, Status: SeatAvailable}

	for _, build := range []func() (*Transition, error){
		func() (*Transition, error) { return StartService(approvedAppointment(3), seat) },
		func() (*Transition, error) { return MoveSeat(inProgressAppointment(3), seat) },
	} {
		tr, err := build()
		require.NoError(t, err)
		require.NotNil(t, tr.SeatID)
		require.NotNil(t, tr.ReleaseSeatID)
		assert.NotEqual(t, *tr.SeatID, *tr.ReleaseSeatID)
	}
}
