package release_appointment

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"

// ReleaseAppointmentResponse HTTP response model
type ReleaseAppointmentResponse struct {
	AppointmentID  int64  `json:"appointmentId"`
	ReleasedSeatID int64  `json:"releasedSeatId"`
	Status         string `json:"status"`
}

// FromServiceResult конвертирует итог сервиса в HTTP response
func FromServiceResult(result *models.ReleaseResult) *ReleaseAppointmentResponse {
	return &ReleaseAppointmentResponse{
		AppointmentID:  result.AppointmentID,
		ReleasedSeatID: result.ReleasedSeatID,
		Status:         result.Status,
	}
}
