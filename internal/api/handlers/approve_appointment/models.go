package approve_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	approveAppointment "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/approve_appointment"
)

// ApproveAppointmentRequest HTTP request model
type ApproveAppointmentRequest struct {
	SeatID int64 `json:"seatId"`
}

// ApproveAppointmentResponse HTTP response model
type ApproveAppointmentResponse struct {
	ID              int64  `json:"id"`
	TicketNumber    string `json:"ticketNumber"`
	Status          string `json:"status"`
	SeatID          *int64 `json:"seatId,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveAppointment.Response) *ApproveAppointmentResponse {
	return &ApproveAppointmentResponse{
		ID:              resp.ID,
		TicketNumber:    resp.TicketNumber,
		Status:          resp.Status,
		SeatID:          resp.SeatID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
