package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	apptClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	branchClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

// UseCase use case создания записи.
// Запись создается в статусе pending без привязки места; место назначается
// позже через approve или карту мест.
type UseCase struct {
	appointments AppointmentClient
	branch       BranchClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentClient,
	branch BranchClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		branch:       branch,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, date=%s, time=%s, services=%d",
		req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Services))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация полей, не требующих расписания
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем рабочие часы филиала (на каждую сессию формы)
	hours, err := uc.branch.GetWorkingHours(ctx)
	if err != nil {
		if errors.Is(err, branchClient.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	schedule := hours.ToDomain()

	// 4. Проверяем день и время против расписания
	if err := validateTime(req, schedule); err != nil {
		uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 5. Проверяем выбранные услуги
	if err := validateServices(req.Services); err != nil {
		uc.logger.Warn("CreateAppointment: services validation failed: %v", err)
		return nil, err
	}

	// 6. Отправляем создание: статус pending, место не привязано
	serviceRefs := make([]apptClient.ServiceRef, 0, len(req.Services))
	for _, s := range req.Services {
		serviceRefs = append(serviceRefs, apptClient.ServiceRef{ID: s.ID})
	}

	created, err := uc.appointments.Create(ctx, &apptClient.UpdateRequest{
		UserID:          req.CustomerID,
		AppointmentDate: req.Date.Format(domain.DateFormat),
		AppointmentTime: req.StartTime.String(),
		Services:        serviceRefs,
		Status:          string(domain.StatusPending),
		SeatID:          nil,
		Notes:           req.Notes,
		StaffID:         nil,
	})
	if err != nil {
		return nil, uc.mapRemoteError("CreateAppointment", err)
	}

	result, err := created.ToDomain()
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid appointment in response: %v", err)
		return nil, fmt.Errorf("%w: invalid appointment in response: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d ticket=%s",
		result.ID, result.TicketNumber)

	return fromDomain(result), nil
}

// mapRemoteError маппит ошибки клиента на ошибки usecase
func (uc *UseCase) mapRemoteError(op string, err error) error {
	switch {
	case errors.Is(err, apptClient.ErrConflict):
		uc.logger.Warn("%s: rejected by appointment service: %v", op, err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, apptClient.ErrUnauthorized):
		uc.logger.Warn("%s: session expired", op)
		return ErrUnauthorized
	default:
		uc.logger.Error("%s: appointment service error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
