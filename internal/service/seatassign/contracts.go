package seatassign

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/seatservice"
)

// AppointmentClient интерфейс клиента RemoteAppointmentService
type AppointmentClient interface {
	Get(ctx context.Context, id int64) (*appointmentservice.Appointment, error)
	UpdateSeatStatus(ctx context.Context, id int64, status string, seatID int64) error
}

// SeatClient интерфейс клиента RemoteSeatService
type SeatClient interface {
	GetSeat(ctx context.Context, seatID int64) (*seatservice.Seat, error)
	CheckAvailability(ctx context.Context, seatID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
