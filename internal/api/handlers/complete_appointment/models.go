package complete_appointment

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments/models"

// CompleteAppointmentResponse HTTP response model
type CompleteAppointmentResponse struct {
	AppointmentID  int64  `json:"appointmentId"`
	Status         string `json:"status"`
	ReleasedSeatID *int64 `json:"releasedSeatId,omitempty"`
}

// FromServiceResult конвертирует итог сервиса в HTTP response
func FromServiceResult(result *models.StatusResult) *CompleteAppointmentResponse {
	return &CompleteAppointmentResponse{
		AppointmentID:  result.AppointmentID,
		Status:         result.Status,
		ReleasedSeatID: result.ReleasedSeatID,
	}
}
