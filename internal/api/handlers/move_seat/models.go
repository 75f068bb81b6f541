package move_seat

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"

// MoveSeatRequest HTTP request model
type MoveSeatRequest struct {
	SeatID int64 `json:"seatId"`
}

// MoveSeatResponse HTTP response model.
// Moved=false означает перенос на текущее место: состояние не менялось.
type MoveSeatResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	SeatID        int64  `json:"seatId"`
	Status        string `json:"status"`
	Moved         bool   `json:"moved"`
}

// FromServiceResult конвертирует итог сервиса в HTTP response
func FromServiceResult(result *models.MoveResult) *MoveSeatResponse {
	return &MoveSeatResponse{
		AppointmentID: result.AppointmentID,
		SeatID:        result.SeatID,
		Status:        result.Status,
		Moved:         result.Moved,
	}
}
