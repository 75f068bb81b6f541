package create_appointment

import (
	"context"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

// AppointmentClient интерфейс клиента RemoteAppointmentService
type AppointmentClient interface {
	Create(ctx context.Context, req *appointmentservice.UpdateRequest) (*appointmentservice.Appointment, error)
}

// BranchClient интерфейс клиента конфигурации филиала
type BranchClient interface {
	GetWorkingHours(ctx context.Context) (*branchservice.WorkingHoursResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
