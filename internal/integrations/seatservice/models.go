package seatservice

import "github.com/rk49trivedi/appsalozy-sub000/internal/domain"

// Seat модель места из RemoteSeatService
type Seat struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Status              string `json:"status"` // available | occupied | cleaning | maintenance
	StaffID             *int64 `json:"staff_id,omitempty"`
	ActiveAppointmentID *int64 `json:"active_appointment_id,omitempty"`
}

// AvailabilityResponse ответ живой проверки доступности места
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// SeatListResponse ответ списка мест
type SeatListResponse struct {
	Seats []Seat `json:"seats"`
}

// ToDomain конвертирует wire-модель в доменную
func (s *Seat) ToDomain() *domain.Seat {
	return &domain.Seat{
		ID:                  s.ID,
		Name:                s.Name,
		Status:              domain.SeatStatus(s.Status),
		StaffID:             s.StaffID,
		ActiveAppointmentID: s.ActiveAppointmentID,
	}
}
