package release_appointment

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"
)

type SeatAssignService interface {
	ReleaseToPending(ctx context.Context, appointmentID int64) (*models.ReleaseResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
