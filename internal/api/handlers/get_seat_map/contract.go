package get_seat_map

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatmap/models"
)

type SeatMapService interface {
	GetSnapshot(ctx context.Context) (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
