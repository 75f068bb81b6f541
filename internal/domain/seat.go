package domain

// SeatStatus represents the state of a physical service station
type SeatStatus string

const (
	SeatAvailable   SeatStatus = "available"
	SeatOccupied    SeatStatus = "occupied"
	SeatCleaning    SeatStatus = "cleaning"
	SeatMaintenance SeatStatus = "maintenance"
)

// Seat represents a physical service station. A seat holds at most one
// active appointment at a time; the remote seat service is the final
// arbiter of that exclusivity.
type Seat struct {
	ID                  int64
	Name                string
	Status              SeatStatus
	StaffID             *int64
	ActiveAppointmentID *int64
}

// IsAvailable returns true if the seat can accept a new appointment
func (s *Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// Holds returns true if the seat's active appointment is the given one
func (s *Seat) Holds(appointmentID int64) bool {
	return s.ActiveAppointmentID != nil && *s.ActiveAppointmentID == appointmentID
}

// OccupancyExcludes returns true if the seat's current occupancy does not
// conflict with the given appointment: the seat is either free or already
// holds that same appointment.
func (s *Seat) OccupancyExcludes(appointmentID int64) bool {
	return s.ActiveAppointmentID == nil || s.Holds(appointmentID)
}
