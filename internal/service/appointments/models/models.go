package models

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// ServiceLine строка услуги в карточке записи
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
	SeatID    *int64
	StaffID   *int64
}

// AppointmentView карточка записи для админ-клиента.
// Status несёт производный статус: запись с местом в pending
// показывается как approved.
type AppointmentView struct {
	ID           int64
	TicketNumber string
	CustomerID   int64
	Date         time.Time
	StartTime    types.TimeString
	Status       string
	SeatID       *int64
	Services     []ServiceLine
	Notes        *string

	OriginalTotal  float64
	DiscountAmount float64
	FinalTotal     float64
	CurrencySymbol string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusResult итог перехода только по статусу
type StatusResult struct {
	AppointmentID int64
	Status        string

	// ReleasedSeatID место, освобождённое переходом, nil когда
	// место не было привязано
	ReleasedSeatID *int64
}

// FromDomainAppointment конвертирует доменную модель в карточку
func FromDomainAppointment(a *domain.Appointment) (*AppointmentView, error) {
	seatID, err := a.CurrentSeat()
	if err != nil {
		return nil, err
	}

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

	return &AppointmentView{
		ID:             a.ID,
		TicketNumber:   a.TicketNumber,
		CustomerID:     a.CustomerID,
		Date:           a.Date,
		StartTime:      a.StartTime,
		Status:         string(a.EffectiveStatus()),
		SeatID:         seatID,
		Services:       services,
		Notes:          a.Notes,
		OriginalTotal:  a.OriginalTotal,
		DiscountAmount: a.DiscountAmount,
		FinalTotal:     a.FinalTotal,
		CurrencySymbol: a.CurrencySymbol,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}, nil
}
