package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	apptClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	branchClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

// UseCase use case редактирования записи.
// Редактирование разрешено только в статусах pending и in_progress:
// терминальные записи неизменяемы, попытка отклоняется до обращения
// к удалённому сервису за обновлением.
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

// Execute выполняет use case редактирования записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, customer=%d, date=%s, time=%s, status=%s",
		req.AppointmentID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime, req.Status)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация полей формы
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущий снапшот записи
	snapshot, err := uc.appointments.Get(ctx, req.AppointmentID)
	if err != nil {
		return nil, uc.mapRemoteError("UpdateAppointment", err)
	}

	current, err := snapshot.ToDomain()
	if err != nil {
		uc.logger.Error("UpdateAppointment: invalid appointment snapshot: %v", err)
		return nil, fmt.Errorf("%w: invalid appointment snapshot: %v", ErrInternal, err)
	}

	// 4. Гард статусной машины: терминальные записи неизменяемы.
	// Отклоняем до каких-либо мутаций.
	if !current.CanBeEdited() {
		uc.logger.Warn("UpdateAppointment: id=%d is not editable, status=%s",
			req.AppointmentID, current.Status)
		return nil, ErrNotEditable
	}

	// 5. Получаем рабочие часы филиала
	hours, err := uc.branch.GetWorkingHours(ctx)
	if err != nil {
		if errors.Is(err, branchClient.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("UpdateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 6. Проверяем день и время против расписания
	if err := validateTime(req, hours.ToDomain()); err != nil {
		uc.logger.Warn("UpdateAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 7. Проверяем выбранные услуги
	if err := validateServices(req.Services); err != nil {
		uc.logger.Warn("UpdateAppointment: services validation failed: %v", err)
		return nil, err
	}

	// 8. Любой статус кроме pending требует привязанного места
	if err := validateSeatBinding(req); err != nil {
		uc.logger.Warn("UpdateAppointment: seat binding validation failed: %v", err)
		return nil, err
	}

	// 9. Отправляем полное обновление (время всегда "HH:mm")
	serviceRefs := make([]apptClient.ServiceRef, 0, len(req.Services))
	for _, s := range req.Services {
		serviceRefs = append(serviceRefs, apptClient.ServiceRef{ID: s.ID})
	}

	updated, err := uc.appointments.Update(ctx, req.AppointmentID, &apptClient.UpdateRequest{
		UserID:          req.CustomerID,
		AppointmentDate: req.Date.Format(domain.DateFormat),
		AppointmentTime: req.StartTime.String(),
		Services:        serviceRefs,
		Status:          req.Status,
		SeatID:          req.SeatID,
		Notes:           req.Notes,
		StaffID:         req.StaffID,
	})
	if err != nil {
		return nil, uc.mapRemoteError("UpdateAppointment", err)
	}

	result, err := updated.ToDomain()
	if err != nil {
		uc.logger.Error("UpdateAppointment: invalid appointment in response: %v", err)
		return nil, fmt.Errorf("%w: invalid appointment in response: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return fromDomain(result), nil
}

// mapRemoteError маппит ошибки клиента на ошибки usecase
func (uc *UseCase) mapRemoteError(op string, err error) error {
	switch {
	case errors.Is(err, apptClient.ErrAppointmentNotFound):
		uc.logger.Warn("%s: appointment not found", op)
		return ErrAppointmentNotFound
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
