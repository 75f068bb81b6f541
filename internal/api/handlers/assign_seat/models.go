package assign_seat

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"

// AssignSeatRequest HTTP request model
type AssignSeatRequest struct {
	SeatID int64 `json:"seatId"`
}

// AssignSeatResponse HTTP response model
type AssignSeatResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	SeatID        int64  `json:"seatId"`
	Status        string `json:"status"`
}

// FromServiceResult конвертирует итог сервиса в HTTP response
func FromServiceResult(result *models.AssignResult) *AssignSeatResponse {
	return &AssignSeatResponse{
		AppointmentID: result.AppointmentID,
		SeatID:        result.SeatID,
		Status:        result.Status,
	}
}
