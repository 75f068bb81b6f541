package seatassign

import (
	"context"
	"errors"
	"fmt"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	apptClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/appointmentservice"
	seatClient "github.com/rk49trivedi/appsalozy-sub000/internal/integrations/seatservice"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign/models"
)

// Service координатор привязки записей к местам.
// Никогда не кеширует занятость мест: живая проверка выполняется
// непосредственно перед каждой мутацией, а финальным арбитром
// остаётся удалённый сервис.
type Service struct {
	appointments AppointmentClient
	seats        SeatClient
	logger       Logger
}

// NewService создает новый экземпляр координатора мест
func NewService(
	appointments AppointmentClient,
	seats SeatClient,
	logger Logger,
) *Service {
	return &Service{
		appointments: appointments,
		seats:        seats,
		logger:       logger,
	}
}

// CheckAvailable выполняет живую проверку доступности места
func (s *Service) CheckAvailable(ctx context.Context, seatID int64) (bool, error) {
	if seatID <= 0 {
		return false, fmt.Errorf("%w: seat id must be positive", ErrInvalidInput)
	}

	available, err := s.seats.CheckAvailability(ctx, seatID)
	if err != nil {
		return false, s.mapSeatError("CheckAvailable", err)
	}
	return available, nil
}

// AssignToSeat привязывает запись к месту.
// Для голой pending-записи это подтверждение (на wire статус остаётся
// pending, производный статус становится approved); для approved-записи
// это начало обслуживания (in_progress).
func (s *Service) AssignToSeat(ctx context.Context, appointmentID, seatID int64) (*models.AssignResult, error) {
	s.logger.Info("AssignToSeat: appointment=%d, seat=%d", appointmentID, seatID)

	if appointmentID <= 0 || seatID <= 0 {
		return nil, fmt.Errorf("%w: appointment id and seat id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetchAppointment(ctx, "AssignToSeat", appointmentID)
	if err != nil {
		return nil, err
	}

	switch appointment.EffectiveStatus() {
	case domain.EffectivePending:
		return s.approvePending(ctx, appointment, seatID)
	case domain.EffectiveInProgress:
		// место меняется только через MoveToSeat
		s.logger.Warn("AssignToSeat: appointment=%d already in progress", appointmentID)
		return nil, ErrIllegalTransition
	case domain.EffectiveApproved:
		return s.startService(ctx, appointment, seatID)
	default:
		s.logger.Warn("AssignToSeat: appointment=%d is terminal, status=%s", appointmentID, appointment.Status)
		return nil, ErrIllegalTransition
	}
}

// approvePending выполняет pending -> approved: живая проверка места,
// затем комбинированный переход статус+место
func (s *Service) approvePending(ctx context.Context, appointment *domain.Appointment, seatID int64) (*models.AssignResult, error) {
	tr, err := domain.Approve(appointment, seatID)
	if err != nil {
		return nil, s.mapDomainError("AssignToSeat", err)
	}

	available, err := s.seats.CheckAvailability(ctx, seatID)
	if err != nil {
		return nil, s.mapSeatError("AssignToSeat", err)
	}
	if !available {
		s.logger.Warn("AssignToSeat: seat=%d is not available for appointment=%d", seatID, appointment.ID)
		return nil, ErrSeatOccupied
	}

	if err := s.appointments.UpdateSeatStatus(ctx, appointment.ID, string(tr.Status), *tr.SeatID); err != nil {
		return nil, s.mapAppointmentError("AssignToSeat", err)
	}

	s.logger.Info("AssignToSeat: appointment=%d approved on seat=%d", appointment.ID, seatID)

	return &models.AssignResult{
		AppointmentID: appointment.ID,
		SeatID:        seatID,
		Status:        models.FromEffectiveStatus(domain.EffectiveApproved),
	}, nil
}

// startService выполняет approved -> in_progress. Целевое место может
// отличаться от назначенного при подтверждении.
func (s *Service) startService(ctx context.Context, appointment *domain.Appointment, seatID int64) (*models.AssignResult, error) {
	seat, err := s.fetchSeat(ctx, "AssignToSeat", seatID)
	if err != nil {
		return nil, err
	}

	tr, err := domain.StartService(appointment, seat)
	if err != nil {
		return nil, s.mapDomainError("AssignToSeat", err)
	}

	if err := s.appointments.UpdateSeatStatus(ctx, appointment.ID, string(tr.Status), *tr.SeatID); err != nil {
		return nil, s.mapAppointmentError("AssignToSeat", err)
	}

	s.logger.Info("AssignToSeat: appointment=%d started on seat=%d", appointment.ID, seatID)

	return &models.AssignResult{
		AppointmentID: appointment.ID,
		SeatID:        seatID,
		Status:        models.FromEffectiveStatus(domain.EffectiveInProgress),
	}, nil
}

// MoveToSeat переносит запись на другое место, не меняя статус.
// Перенос на текущее место является no-op: состояние не меняется
// и мутация к удалённому сервису не отправляется.
func (s *Service) MoveToSeat(ctx context.Context, appointmentID, seatID int64) (*models.MoveResult, error) {
	s.logger.Info("MoveToSeat: appointment=%d, seat=%d", appointmentID, seatID)

	if appointmentID <= 0 || seatID <= 0 {
		return nil, fmt.Errorf("%w: appointment id and seat id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetchAppointment(ctx, "MoveToSeat", appointmentID)
	if err != nil {
		return nil, err
	}

	current, err := appointment.CurrentSeat()
	if err != nil {
		s.logger.Error("MoveToSeat: inconsistent seat binding on appointment=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if current != nil && *current == seatID {
		s.logger.Info("MoveToSeat: appointment=%d already on seat=%d, nothing to do", appointmentID, seatID)
		return &models.MoveResult{
			AppointmentID: appointmentID,
			SeatID:        seatID,
			Status:        models.FromEffectiveStatus(appointment.EffectiveStatus()),
			Moved:         false,
		}, nil
	}

	seat, err := s.fetchSeat(ctx, "MoveToSeat", seatID)
	if err != nil {
		return nil, err
	}

	tr, err := domain.MoveSeat(appointment, seat)
	if err != nil {
		return nil, s.mapDomainError("MoveToSeat", err)
	}

	if err := s.appointments.UpdateSeatStatus(ctx, appointmentID, string(tr.Status), *tr.SeatID); err != nil {
		return nil, s.mapAppointmentError("MoveToSeat", err)
	}

	s.logger.Info("MoveToSeat: appointment=%d moved to seat=%d", appointmentID, seatID)

	return &models.MoveResult{
		AppointmentID: appointmentID,
		SeatID:        seatID,
		Status:        models.FromEffectiveStatus(appointment.EffectiveStatus()),
		Moved:         true,
	}, nil
}

// ReleaseToPending снимает обслуживаемую запись с места и возвращает её
// в неподтверждённый pending. Переход отправляется как комбинированная
// пара статус+место: удалённый сервис очищает занятость именно этого места.
func (s *Service) ReleaseToPending(ctx context.Context, appointmentID int64) (*models.ReleaseResult, error) {
	s.logger.Info("ReleaseToPending: appointment=%d", appointmentID)

	if appointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	appointment, err := s.fetchAppointment(ctx, "ReleaseToPending", appointmentID)
	if err != nil {
		return nil, err
	}

	tr, err := domain.ReleaseToPending(appointment)
	if err != nil {
		return nil, s.mapDomainError("ReleaseToPending", err)
	}

	if tr.ReleaseSeatID == nil {
		s.logger.Error("ReleaseToPending: appointment=%d is in progress without a bound seat", appointmentID)
		return nil, fmt.Errorf("%w: in-progress appointment has no bound seat", ErrInternal)
	}

	if err := s.appointments.UpdateSeatStatus(ctx, appointmentID, string(tr.Status), *tr.ReleaseSeatID); err != nil {
		return nil, s.mapAppointmentError("ReleaseToPending", err)
	}

	s.logger.Info("ReleaseToPending: appointment=%d released from seat=%d", appointmentID, *tr.ReleaseSeatID)

	return &models.ReleaseResult{
		AppointmentID:  appointmentID,
		ReleasedSeatID: *tr.ReleaseSeatID,
		Status:         models.FromEffectiveStatus(domain.EffectivePending),
	}, nil
}

// fetchAppointment получает и конвертирует снапшот записи
func (s *Service) fetchAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	snapshot, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, s.mapAppointmentError(op, err)
	}

	appointment, err := snapshot.ToDomain()
	if err != nil {
		s.logger.Error("%s: invalid appointment snapshot id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: invalid appointment snapshot: %v", ErrInternal, err)
	}
	return appointment, nil
}

// fetchSeat получает и конвертирует снапшот места
func (s *Service) fetchSeat(ctx context.Context, op string, seatID int64) (*domain.Seat, error) {
	seat, err := s.seats.GetSeat(ctx, seatID)
	if err != nil {
		return nil, s.mapSeatError(op, err)
	}
	return seat.ToDomain(), nil
}

// mapDomainError маппит ошибки статусной машины на ошибки сервиса
func (s *Service) mapDomainError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrIllegalTransition):
		s.logger.Warn("%s: illegal transition: %v", op, err)
		return ErrIllegalTransition
	case errors.Is(err, domain.ErrSeatOccupied):
		s.logger.Warn("%s: seat occupied: %v", op, err)
		return ErrSeatOccupied
	case errors.Is(err, domain.ErrSeatUnavailable):
		s.logger.Warn("%s: seat unavailable: %v", op, err)
		return ErrSeatUnavailable
	case errors.Is(err, domain.ErrSeatRequired), errors.Is(err, domain.ErrNoServices):
		s.logger.Warn("%s: invalid input: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: domain error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// mapAppointmentError маппит ошибки клиента записей на ошибки сервиса
func (s *Service) mapAppointmentError(op string, err error) error {
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

// mapSeatError маппит ошибки клиента мест на ошибки сервиса
func (s *Service) mapSeatError(op string, err error) error {
	switch {
	case errors.Is(err, seatClient.ErrSeatNotFound):
		s.logger.Warn("%s: seat not found", op)
		return ErrSeatNotFound
	case errors.Is(err, seatClient.ErrUnauthorized):
		s.logger.Warn("%s: session expired", op)
		return ErrUnauthorized
	default:
		s.logger.Error("%s: seat service error: %v", op, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
