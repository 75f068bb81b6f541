package approve_appointment

import (
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/types"
)

// Request модель запроса на одобрение записи с назначением места
type Request struct {
	AppointmentID int64
	SeatID        int64
}

// Response модель ответа с одобренной записью
type Response struct {
	ID           int64
	TicketNumber string
	Status       string // отображаемый статус: "approved"
	SeatID       *int64
	Date         time.Time
	StartTime    types.TimeString
	UpdatedAt    time.Time
}

// fromDomain конвертирует доменную модель в response
func fromDomain(a *domain.Appointment) (*Response, error) {
	seatID, err := a.CurrentSeat()
	if err != nil {
		return nil, err
	}

	return &Response{
		ID:           a.ID,
		TicketNumber: a.TicketNumber,
		Status:       string(a.EffectiveStatus()),
		SeatID:       seatID,
		Date:         a.Date,
		StartTime:    a.StartTime,
		UpdatedAt:    a.UpdatedAt,
	}, nil
}
