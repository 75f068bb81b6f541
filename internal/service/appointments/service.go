package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	apptClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments/models"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/ptr"
)

// Service сервис жизненного цикла записей: просмотр, завершение,
// отмена и удаление. Переходы с привязкой мест живут в seatassign.
type Service struct {
	appointments AppointmentClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointments AppointmentClient, logger Logger) *Service {
	return &Service{
		appointments: appointments,
		logger:       logger,
	}
}

// GetByID получает карточку записи с производным статусом
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentView, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	view, err := models.FromDomainAppointment(appointment)
	if err != nil {
		s.logger.Error("GetByID: inconsistent seat binding on appointment=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return view, nil
}

// Complete завершает обслуживаемую запись. Допустимо только из
// in_progress; привязанное место освобождает удалённый сервис.
func (s *Service) Complete(ctx context.Context, id int64) (*models.StatusResult, error) {
	return s.finish(ctx, "Complete", id, domain.Complete)
}

// Cancel отменяет обслуживаемую запись. Допустимо только из
// in_progress; неначатые pending-записи удаляются, а не отменяются.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.StatusResult, error) {
	return s.finish(ctx, "Cancel", id, domain.Cancel)
}

func (s *Service) finish(
	ctx context.Context,
	op string,
	id int64,
	transition func(*domain.Appointment) (*domain.Transition, error),
) (*models.StatusResult, error) {
	s.logger.Info("%s: appointment=%d", op, id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetch(ctx, op, id)
	if err != nil {
		return nil, err
	}

	tr, err := transition(appointment)
	if err != nil {
		if errors.Is(err, domain.ErrIllegalTransition) {
			s.logger.Warn("%s: appointment=%d is not in progress, status=%s", op, id, appointment.Status)
			return nil, ErrIllegalTransition
		}
		s.logger.Error("%s: transition error on appointment=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := s.appointments.UpdateStatus(ctx, id, string(tr.Status)); err != nil {
		return nil, s.mapRemoteError(op, err)
	}

	s.logger.Info("%s: appointment=%d moved to %s, released seat=%d", op, id, tr.Status, ptr.Deref(tr.ReleaseSeatID))

	return &models.StatusResult{
		AppointmentID:  id,
		Status:         string(tr.Status),
		ReleasedSeatID: tr.ReleaseSeatID,
	}, nil
}

// Delete удаляет запись. Допустимо только для pending и cancelled;
// производный approved считается pending и тоже удаляем.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: appointment=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetch(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !appointment.CanBeDeleted() {
		s.logger.Warn("Delete: appointment=%d cannot be deleted, status=%s", id, appointment.Status)
		return ErrNotDeletable
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return s.mapRemoteError("Delete", err)
	}

	s.logger.Info("Delete: appointment=%d deleted", id)
	return nil
}

// fetch получает и конвертирует снапшот записи
func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	snapshot, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, s.mapRemoteError(op, err)
	}

	appointment, err := snapshot.ToDomain()
	if err != nil {
		s.logger.Error("%s: invalid appointment snapshot id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: invalid appointment snapshot: %v", ErrInternal, err)
	}
	return appointment, nil
}

// mapRemoteError маппит ошибки клиента на ошибки сервиса
func (s *Service) mapRemoteError(op string, err error) error {
	switch {
	case errors.Is(err, apptClient.ErrAppointmentNotFound):
		s.logger.Warn("%s: appointment not found", op)
		return ErrAppointmentNotFound
	case errors.Is(err, apptClient.ErrConflict):
		s.logger.Warn("%s: rejected by appointment service: %v", op, err)
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, apptClient.ErrUnauthorized):
		s.logger.Warn("%s: session expired", op)
		return ErrUnauthorized
	default:
		s.logger.Error("%s: appointment service error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
