package assign_seat

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"
)

type SeatAssignService interface {
	AssignToSeat(ctx context.Context, appointmentID, seatID int64) (*models.AssignResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
