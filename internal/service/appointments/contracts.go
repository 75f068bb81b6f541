package appointments

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
)

// AppointmentClient интерфейс клиента RemoteAppointmentService
type AppointmentClient interface {
	Get(ctx context.Context, id int64) (*appointmentservice.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
