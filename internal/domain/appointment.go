package domain

import (
	"fmt"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// AppointmentStatus represents the persisted status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// EffectiveStatus is the display status derived from the persisted status
// and the seat binding. "approved" is not a wire value: the remote service
// keeps the status as "pending" and the bound seat is the approval signal.
type EffectiveStatus string

const (
	EffectivePending    EffectiveStatus = "pending"
	EffectiveApproved   EffectiveStatus = "approved"
	EffectiveInProgress EffectiveStatus = "in_progress"
	EffectiveCompleted  EffectiveStatus = "completed"
	EffectiveCancelled  EffectiveStatus = "cancelled"
)

// ServiceLine represents one service item of an appointment,
// optionally bound to a seat and/or a staff member
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
	SeatID    *int64
	StaffID   *int64
}

// Appointment represents an admin view of a salon appointment.
// The record is owned by the remote appointment service; this struct is a
// snapshot, and every mutation is proposed back to the remote service.
type Appointment struct {
	ID           int64
	TicketNumber string // display identity, immutable
	CustomerID   int64
	BranchID     *int64
	Date         time.Time // calendar day
	StartTime    types.TimeString
	Status       AppointmentStatus
	Notes        *string
	Services     []ServiceLine

	// Money fields are set by the remote service and immutable here
	OriginalTotal  float64
	DiscountAmount float64
	FinalTotal     float64
	CurrencySymbol string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentSeat returns the single seat bound to the appointment, derived from
// its service lines. All bound lines must agree on the seat; a disagreement
// means the snapshot is corrupt and is reported as an error.
// Returns nil when no seat is bound.
func (a *Appointment) CurrentSeat() (*int64, error) {
	var seatID *int64
	for _, line := range a.Services {
		if line.SeatID == nil {
			continue
		}
		if seatID == nil {
			id := *line.SeatID
			seatID = &id
			continue
		}
		if *seatID != *line.SeatID {
			return nil, fmt.Errorf("%w: seats %d and %d", ErrSeatBindingMismatch, *seatID, *line.SeatID)
		}
	}
	return seatID, nil
}

// HasSeat returns true if at least one service line is bound to a seat
func (a *Appointment) HasSeat() bool {
	for _, line := range a.Services {
		if line.SeatID != nil {
			return true
		}
	}
	return false
}

// EffectiveStatus computes the display status, folding the seat binding into
// the derived "approved" variant for seat-bound pending appointments
func (a *Appointment) EffectiveStatus() EffectiveStatus {
	switch a.Status {
	case StatusPending:
		if a.HasSeat() {
			return EffectiveApproved
		}
		return EffectivePending
	case StatusInProgress:
		return EffectiveInProgress
	case StatusCompleted:
		return EffectiveCompleted
	case StatusCancelled:
		return EffectiveCancelled
	default:
		return EffectiveStatus(a.Status)
	}
}

// IsTerminal returns true for completed and cancelled appointments
func (a *Appointment) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// CanBeEdited returns true if the appointment may still be modified.
// Terminal appointments are immutable.
func (a *Appointment) CanBeEdited() bool {
	for _, s := range EditableStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

// CanBeDeleted returns true if the appointment may be deleted
func (a *Appointment) CanBeDeleted() bool {
	return a.Status == StatusPending || a.Status == StatusCancelled
}

// ValidStatus returns true for a known wire status value
func ValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
