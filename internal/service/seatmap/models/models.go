package models

import "github.com/rk49trivedi/appsalozy-sub000/internal/domain"

// SeatView место в карте зала
type SeatView struct {
	ID                  int64
	Name                string
	Status              string
	StaffID             *int64
	ActiveAppointmentID *int64
}

// Snapshot одномоментная карта зала. Снимок предназначен только для
// отображения: перед любой привязкой выполняется отдельная живая
// проверка, снимок никогда не служит гардом.
type Snapshot struct {
	Seats []SeatView

	// AvailableCount число мест, готовых принять запись
	AvailableCount int
}

// FromDomainSeats конвертирует доменные места в карту зала
func FromDomainSeats(seats []*domain.Seat) *Snapshot {
	views := make([]SeatView, 0, len(seats))
	available := 0
	for _, s := range seats {
		if s.IsAvailable() {
			available++
		}
		views = append(views, SeatView{
			ID:                  s.ID,
			Name:                s.Name,
			Status:              string(s.Status),
			StaffID:             s.StaffID,
			ActiveAppointmentID: s.ActiveAppointmentID,
		})
	}
	return &Snapshot{Seats: views, AvailableCount: available}
}
