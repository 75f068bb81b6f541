package approve_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	apptClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
)

// UseCase use case одобрения записи: pending -> approved.
// Статус на проводе остаётся pending, сигналом одобрения служит
// привязанное место; staff при одобрении сбрасывается.
//
// Ровно два сетевых вызова мутации, строго последовательно: живая проверка
// доступности места, затем отправка обновления. Проверка выполняется
// непосредственно перед коммитом, потому что её свежесть и есть смысл
// проверки; снапшот карты мест для этого решения не используется.
type UseCase struct {
	appointments AppointmentClient
	seats        SeatClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentClient,
	seats SeatClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		seats:        seats,
		logger:       logger,
	}
}

// Execute выполняет use case одобрения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveAppointment: id=%d, seat=%d", req.AppointmentID, req.SeatID)

	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	if req.SeatID <= 0 {
		return nil, fmt.Errorf("%w: seat id must be positive", ErrInvalidInput)
	}

	// 2. Получаем текущий снапшот записи
	snapshot, err := uc.appointments.Get(ctx, req.AppointmentID)
	if err != nil {
		return nil, uc.mapRemoteError(err)
	}

	current, err := snapshot.ToDomain()
	if err != nil {
		uc.logger.Error("ApproveAppointment: invalid appointment snapshot: %v", err)
		return nil, fmt.Errorf("%w: invalid appointment snapshot: %v", ErrInternal, err)
	}

	// 3. Гард статусной машины: одобряется только чистый pending
	transition, err := domain.Approve(current, req.SeatID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoServices):
			uc.logger.Warn("ApproveAppointment: id=%d has no services", req.AppointmentID)
			return nil, ErrNoServices
		default:
			uc.logger.Warn("ApproveAppointment: id=%d not approvable, status=%s: %v",
				req.AppointmentID, current.EffectiveStatus(), err)
			return nil, ErrNotApprovable
		}
	}

	// 4. Живая проверка доступности места непосредственно перед коммитом
	available, err := uc.seats.CheckAvailability(ctx, req.SeatID)
	if err != nil {
		uc.logger.Error("ApproveAppointment: availability check failed for seat=%d: %v", req.SeatID, err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !available {
		uc.logger.Warn("ApproveAppointment: seat=%d is not available", req.SeatID)
		return nil, ErrSeatUnavailable
	}

	// 5. Отправляем полное обновление с вычисленной тройкой статус/место/staff
	serviceRefs := make([]apptClient.ServiceRef, 0, len(current.Services))
	for _, s := range current.Services {
		serviceRefs = append(serviceRefs, apptClient.ServiceRef{ID: s.ServiceID})
	}

	updated, err := uc.appointments.Update(ctx, req.AppointmentID, &apptClient.UpdateRequest{
		UserID:          current.CustomerID,
		AppointmentDate: current.Date.Format(domain.DateFormat),
		AppointmentTime: current.StartTime.String(),
		Services:        serviceRefs,
		Status:          string(transition.Status),
		SeatID:          transition.SeatID,
		Notes:           current.Notes,
		StaffID:         transition.StaffID,
	})
	if err != nil {
		return nil, uc.mapRemoteError(err)
	}

	result, err := updated.ToDomain()
	if err != nil {
		uc.logger.Error("ApproveAppointment: invalid appointment in response: %v", err)
		return nil, fmt.Errorf("%w: invalid appointment in response: %v", ErrInternal, err)
	}

	uc.logger.Info("ApproveAppointment: appointment id=%d approved with seat=%d",
		result.ID, req.SeatID)

	resp, err := fromDomain(result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return resp, nil
}

// mapRemoteError маппит ошибки клиента на ошибки usecase
func (uc *UseCase) mapRemoteError(err error) error {
	switch {
	case errors.Is(err, apptClient.ErrAppointmentNotFound):
		uc.logger.Warn("ApproveAppointment: appointment not found")
		return ErrAppointmentNotFound
	case errors.Is(err, apptClient.ErrConflict):
		// Место перехвачено между проверкой и коммитом: показываем причину
		// и предлагаем обновить карту мест, без автоматического ретрая
		uc.logger.Warn("ApproveAppointment: rejected by appointment service: %v", err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, apptClient.ErrUnauthorized):
		uc.logger.Warn("ApproveAppointment: session expired")
		return ErrUnauthorized
	default:
		uc.logger.Error("ApproveAppointment: appointment service error: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
