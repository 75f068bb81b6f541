package update_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	updateAppointment "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/update_appointment"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// ServiceSelectionRequest выбранная услуга в форме редактирования
type ServiceSelectionRequest struct {
	ID    int64  `json:"id"`
	Price string `json:"price"`
}

// UpdateAppointmentRequest HTTP request model.
// Форма присылает полный набор полей (full-replace).
type UpdateAppointmentRequest struct {
	CustomerID      int64                     `json:"customerId"`
	AppointmentDate string                    `json:"appointmentDate"` // "2025-10-15"
	AppointmentTime string                    `json:"appointmentTime"` // "14:00"
	Services        []ServiceSelectionRequest `json:"services"`
	Status          string                    `json:"status"`
	SeatID          *int64                    `json:"seatId,omitempty"`
	StaffID         *int64                    `json:"staffId,omitempty"`
	Notes           *string                   `json:"notes,omitempty"`
}

// ServiceLineResponse строка услуги в ответе
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
	Services        []ServiceLineResponse `json:"services"`
	Notes           *string               `json:"notes,omitempty"`
	OriginalTotal   float64               `json:"originalTotal"`
	DiscountAmount  float64               `json:"discountAmount"`
	FinalTotal      float64               `json:"finalTotal"`
	CurrencySymbol  string                `json:"currencySymbol"`
	CreatedAt       string                `json:"createdAt"`
	UpdatedAt       string                `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*updateAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	services := make([]updateAppointment.ServiceSelection, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, updateAppointment.ServiceSelection{ID: s.ID, Price: s.Price})
	}

	return &updateAppointment.Request{
		AppointmentID: appointmentID,
		CustomerID:    r.CustomerID,
		Date:          date,
		StartTime:     startTime,
		Services:      services,
		Status:        r.Status,
		SeatID:        r.SeatID,
		StaffID:       r.StaffID,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	services := make([]ServiceLineResponse, 0, len(resp.Services))
	for _, s := range resp.Services {
		services = append(services, ServiceLineResponse{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			SeatID:    s.SeatID,
			StaffID:   s.StaffID,
		})
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		TicketNumber:    resp.TicketNumber,
		CustomerID:      resp.CustomerID,
		AppointmentDate: resp.Date.Format(domain.DateFormat),
		AppointmentTime: resp.StartTime.String(),
		Status:          resp.Status,
		Services:        services,
		Notes:           resp.Notes,
		OriginalTotal:   resp.OriginalTotal,
		DiscountAmount:  resp.DiscountAmount,
		FinalTotal:      resp.FinalTotal,
		CurrencySymbol:  resp.CurrencySymbol,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
