package move_seat

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"
)

type SeatAssignService interface {
	MoveToSeat(ctx context.Context, appointmentID, seatID int64) (*models.MoveResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
