package update_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// ServiceSelection выбранная в форме услуга (цена строкой, лениентная коэрция)
type ServiceSelection struct {
	ID    int64
	Price string
}

// Request модель запроса на редактирование записи.
// Форма присылает полный набор полей (full-replace).
type Request struct {
	AppointmentID int64
	CustomerID    int64
	Date          time.Time
	StartTime     types.TimeString
	Services      []ServiceSelection
	Status        string // целевой статус записи
	SeatID        *int64 // обязателен, когда Status != pending
	StaffID       *int64
	Notes         *string
}

// ServiceLine строка услуги в ответе
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
	SeatID    *int64
	StaffID   *int64
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID           int64
	TicketNumber string
	CustomerID   int64
	Date         time.Time
	StartTime    types.TimeString
	Status       string
	Services     []ServiceLine
	Notes        *string

	OriginalTotal  float64
	DiscountAmount float64
	FinalTotal     float64
	CurrencySymbol string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomain конвертирует доменную модель в response
func fromDomain(a *domain.Appointment) *Response {
	services := make([]ServiceLine, 0, len(a.Services))
	for _, s := range a.Services {
		services = append(services, ServiceLine{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Price:     s.Price,
			SeatID:    s.SeatID,
			StaffID:   s.StaffID,
		})
	}

	return &Response{
		ID:             a.ID,
		TicketNumber:   a.TicketNumber,
		CustomerID:     a.CustomerID,
		Date:           a.Date,
		StartTime:      a.StartTime,
		Status:         string(a.EffectiveStatus()),
		Services:       services,
		Notes:          a.Notes,
		OriginalTotal:  a.OriginalTotal,
		DiscountAmount: a.DiscountAmount,
		FinalTotal:     a.FinalTotal,
		CurrencySymbol: a.CurrencySymbol,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
