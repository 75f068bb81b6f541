package cancel_appointment

import "github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments/models"

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	AppointmentID  int64  `json:"appointmentId"`
	Status         string `json:"status"`
	ReleasedSeatID *int64 `json:"releasedSeatId,omitempty"`
}

// FromServiceResult конвертирует итог сервиса в HTTP response
func FromServiceResult(result *models.StatusResult) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		AppointmentID:  result.AppointmentID,
		Status:         result.Status,
		ReleasedSeatID: result.ReleasedSeatID,
	}
}
