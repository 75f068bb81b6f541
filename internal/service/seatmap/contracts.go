package seatmap

import (
	"context"

	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/seatservice"
)

// SeatClient интерфейс клиента RemoteSeatService
type SeatClient interface {
	ListSeats(ctx context.Context) ([]seatservice.Seat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
