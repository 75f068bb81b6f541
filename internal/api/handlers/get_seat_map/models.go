package get_seat_map

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatmap/models"

// SeatResponse место в карте зала
type SeatResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Status              string `json:"status"`
	StaffID             *int64 `json:"staffId,omitempty"`
	ActiveAppointmentID *int64 `json:"activeAppointmentId,omitempty"`
}

// SeatMapResponse HTTP response model
type SeatMapResponse struct {
	Seats          []SeatResponse `json:"seats"`
	AvailableCount int            `json:"availableCount"`
}

// FromServiceSnapshot конвертирует снимок сервиса в HTTP response
func FromServiceSnapshot(snapshot *models.Snapshot) *SeatMapResponse {
	seats := make([]SeatResponse, 0, len(snapshot.Seats))
	for _, s := range snapshot.Seats {
		seats = append(seats, SeatResponse{
			ID:                  s.ID,
			Name:                s.Name,
			Status:              s.Status,
			StaffID:             s.StaffID,
			ActiveAppointmentID: s.ActiveAppointmentID,
		})
	}
	return &SeatMapResponse{
		Seats:          seats,
		AvailableCount: snapshot.AvailableCount,
	}
}
