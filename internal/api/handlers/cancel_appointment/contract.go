package cancel_appointment

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id int64) (*models.StatusResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
