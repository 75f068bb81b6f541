package seatmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	seatClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/seatservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatmap/models"
)

// Service сервис карты зала для экрана выбора места
type Service struct {
	seats  SeatClient
	logger Logger
}

// NewService создает новый экземпляр сервиса карты зала
func NewService(seats SeatClient, logger Logger) *Service {
	return &Service{
		seats:  seats,
		logger: logger,
	}
}

// GetSnapshot получает одномоментную карту зала
func (s *Service) GetSnapshot(ctx context.Context) (*models.Snapshot, error) {
	s.logger.Info("GetSnapshot: fetching seat map")

	wireSeats, err := s.seats.ListSeats(ctx)
	if err != nil {
		if errors.Is(err, seatClient.ErrUnauthorized) {
			s.logger.Warn("GetSnapshot: session expired")
			return nil, ErrUnauthorized
		}
		s.logger.Error("GetSnapshot: seat service error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	seats := make([]*domain.Seat, 0, len(wireSeats))
	for i := range wireSeats {
		seats = append(seats, wireSeats[i].ToDomain())
	}

	s.logger.Info("GetSnapshot: fetched %d seats", len(seats))
	return models.FromDomainSeats(seats), nil
}
