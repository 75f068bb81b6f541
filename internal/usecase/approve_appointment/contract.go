package approve_appointment

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
)

// AppointmentClient интерфейс клиента RemoteAppointmentService
type AppointmentClient interface {
	Get(ctx context.Context, id int64) (*appointmentservice.Appointment, error)
	Update(ctx context.Context, id int64, req *appointmentservice.UpdateRequest) (*appointmentservice.Appointment, error)
}

// SeatClient интерфейс клиента RemoteSeatService
type SeatClient interface {
	CheckAvailability(ctx context.Context, seatID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
