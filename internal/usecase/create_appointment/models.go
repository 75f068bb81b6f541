package create_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// ServiceSelection выбранная в форме услуга.
// Цена приходит строкой из формы; нераспознаваемое значение превращается
// в 0 (авторитетную сумму пересчитывает удалённый сервис).
type ServiceSelection struct {
	ID    int64
	Price string
}

// Request модель запроса на создание записи
type Request struct {
	CustomerID int64
	Date       time.Time        // дата записи (без времени)
	StartTime  types.TimeString // время начала, например "14:00"
	Services   []ServiceSelection
	Notes      *string
}

// ServiceLine строка услуги в ответе
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
	SeatID    *int64
	StaffID   *int64
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64
	TicketNumber string
	CustomerID   int64
	Date         time.Time
	StartTime    types.TimeString
	Status       string // отображаемый статус (с учётом производного "approved")
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
