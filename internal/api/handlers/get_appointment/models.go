package get_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments/models"
)

// ServiceLineResponse строка услуги в карточке записи
type ServiceLineResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	SeatID    *int64  `json:"seatId,omitempty"`
	StaffID   *int64  `json:"staffId,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64                 `json:"id"`
	TicketNumber    string                `json:"ticketNumber"`
	CustomerID      int64                 `json:"customerId"`
	AppointmentDate string                `json:"appointmentDate"`
	AppointmentTime string                `json:"appointmentTime"`
	Status          string                `json:"status"`
	SeatID          *int64                `json:"seatId,omitempty"`
	Services        []ServiceLineResponse `json:"services"`
	Notes           *string               `json:"notes,omitempty"`
	OriginalTotal   float64               `json:"originalTotal"`
	DiscountAmount  float64               `json:"discountAmount"`
	FinalTotal      float64               `json:"finalTotal"`
	CurrencySymbol  string                `json:"currencySymbol"`
	CreatedAt       string                `json:"createdAt"`
	UpdatedAt       string                `json:"updatedAt"`
}

// FromServiceView конвертирует карточку сервиса в HTTP response
func FromServiceView(view *models.AppointmentView) *AppointmentResponse {
	services := make([]ServiceLineResponse, 0, len(view.Services))
	for _, s := range view.Services {
		services = append(services, ServiceLineResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			SeatID:    s.SeatID,
			StaffID:   s.StaffID,
		})
	}

	return &AppointmentResponse{
		ID:              view.ID,
		TicketNumber:    view.TicketNumber,
		CustomerID:      view.CustomerID,
		AppointmentDate: view.Date.Format(domain.DateFormat),
		AppointmentTime: view.StartTime.String(),
		Status:          view.Status,
		SeatID:          view.SeatID,
		Services:        services,
		Notes:           view.Notes,
		OriginalTotal:   view.OriginalTotal,
		DiscountAmount:  view.DiscountAmount,
		FinalTotal:      view.FinalTotal,
		CurrencySymbol:  view.CurrencySymbol,
		CreatedAt:       view.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       view.UpdatedAt.Format(time.RFC3339),
	}
}
