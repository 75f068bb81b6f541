package domain

// Transition is the status/seat/staff triple computed for one admin intent.
// The triple is what gets submitted to the remote appointment service; the
// remote service remains the final arbiter and may still reject it.
type Transition struct {
	Status AppointmentStatus

	// SeatID is the seat to bind, nil when the transition leaves the
	// appointment without a seat
	SeatID *int64

	// StaffID is the staff member to bind, nil when staff is cleared
	StaffID *int64

	// ReleaseSeatID is the previously bound seat whose occupancy must be
	// cleared before or atomically with binding SeatID. An appointment never
	// holds two seats at once.
	ReleaseSeatID *int64
}

// Approve computes the pending -> approved transition: the appointment stays
// "pending" on the wire, the seat binding is created and staff is cleared.
// Requires a bare pending appointment with at least one service line.
func Approve(a *Appointment, seatID int64) (*Transition, error) {
	if a.EffectiveStatus() != EffectivePending {
		return nil, ErrIllegalTransition
	}
	if seatID <= 0 {
		return nil, ErrSeatRequired
	}
	if len(a.Services) == 0 {
		return nil, ErrNoServices
	}

	return &Transition{
		Status:  StatusPending,
		SeatID:  &seatID,
		StaffID: nil, // approval clears any staff binding
	}, nil
}

// StartService computes the approved -> in_progress transition. The target
// seat may differ from the one bound at approval; it must be available or
// already held by this appointment, and the previously bound seat is released.
func StartService(a *Appointment, seat *Seat) (*Transition, error) {
	if a.EffectiveStatus() != EffectiveApproved {
		return nil, ErrIllegalTransition
	}
	if err := checkSeatBindable(a, seat); err != nil {
		return nil, err
	}

	current, err := a.CurrentSeat()
	if err != nil {
		return nil, err
	}

	tr := &Transition{
		Status: StatusInProgress,
		SeatID: &seat.ID,
	}
	if current != nil && *current != seat.ID {
		tr.ReleaseSeatID = current
	}
	return tr, nil
}

// MoveSeat computes a rebind to a different seat without changing the
// persisted status. Valid only while a seat is bound (approved or
// in_progress). Moving to the currently bound seat is the caller's no-op
// case and never reaches this function.
func MoveSeat(a *Appointment, seat *Seat) (*Transition, error) {
	status := a.EffectiveStatus()
	if status != EffectiveApproved && status != EffectiveInProgress {
		return nil, ErrIllegalTransition
	}
	if err := checkSeatBindable(a, seat); err != nil {
		return nil, err
	}

	current, err := a.CurrentSeat()
	if err != nil {
		return nil, err
	}

	tr := &Transition{
		Status: a.Status,
		SeatID: &seat.ID,
	}
	if current != nil && *current != seat.ID {
		tr.ReleaseSeatID = current
	}
	return tr, nil
}

// Complete computes the in_progress -> completed transition. The bound seat
// is released; the status becomes terminal.
func Complete(a *Appointment) (*Transition, error) {
	return finishInProgress(a, StatusCompleted)
}

// Cancel computes the in_progress -> cancelled transition. The bound seat
// is released; the status becomes terminal.
func Cancel(a *Appointment) (*Transition, error) {
	return finishInProgress(a, StatusCancelled)
}

// ReleaseToPending computes the in_progress -> pending transition used to
// undo a bad seat assignment: the seat binding is cleared and the
// appointment reverts to the un-approved pending state.
func ReleaseToPending(a *Appointment) (*Transition, error) {
	return finishInProgress(a, StatusPending)
}

// checkSeatBindable guards every seat binding: the target seat must be
// available, or already hold this very appointment. A seat under cleaning
// or maintenance accepts no new bindings even when nothing occupies it.
func checkSeatBindable(a *Appointment, seat *Seat) error {
	if seat == nil {
		return ErrSeatRequired
	}
	if !seat.OccupancyExcludes(a.ID) {
		return ErrSeatOccupied
	}
	if !seat.IsAvailable() && !seat.Holds(a.ID) {
		return ErrSeatUnavailable
	}
	return nil
}

func finishInProgress(a *Appointment, target AppointmentStatus) (*Transition, error) {
	if a.Status != StatusInProgress {
		return nil, ErrIllegalTransition
	}

	current, err := a.CurrentSeat()
	if err != nil {
		return nil, err
	}

	return &Transition{
		Status:        target,
		SeatID:        nil,
		ReleaseSeatID: current,
	}, nil
}
