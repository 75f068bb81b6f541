package domain

import "errors"

var (
	// ErrBranchClosed is returned when the branch is closed on the requested weekday
	ErrBranchClosed = errors.New("domain: branch is closed")

	// ErrOutsideWorkingHours is returned when the requested time falls outside
	// the branch working hours for that weekday
	ErrOutsideWorkingHours = errors.New("domain: time is outside working hours")

	// ErrPastDate is returned for dates strictly before the current calendar day
	ErrPastDate = errors.New("domain: date is in the past")

	// ErrIllegalTransition is returned when a status transition is not allowed
	// from the appointment's current state
	ErrIllegalTransition = errors.New("domain: illegal status transition")

	// ErrSeatRequired is returned when a transition needs a seat but none was given
	ErrSeatRequired = errors.New("domain: seat is required")

	// ErrNoServices is returned when a transition requires at least one service line
	ErrNoServices = errors.New("domain: appointment has no services")

	// ErrSeatOccupied is returned when the target seat is held by another appointment
	ErrSeatOccupied = errors.New("domain: seat is occupied by another appointment")

	// ErrSeatUnavailable is returned when the target seat holds no appointment
	// but its status (cleaning, maintenance) forbids new bindings
	ErrSeatUnavailable = errors.New("domain: seat is not available")

	// ErrSeatBindingMismatch is returned when the service lines of one appointment
	// disagree on the bound seat (corrupt snapshot)
	ErrSeatBindingMismatch = errors.New("domain: service lines disagree on bound seat")
)
