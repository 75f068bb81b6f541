package update_appointment

import (
	"fmt"
	"time"

	"github.com/rk49trivedi/appsalozy-sub000/internal/domain"
	"github.com/rk49trivedi/appsalozy-sub000/pkg/numparse"
)

// validateRequest валидирует поля формы, не требующие расписания филиала.
// Первое непрошедшее правило прерывает проверку (fail-fast).
func validateRequest(req *Request, now time.Time) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}

	if err := domain.IsFutureOrToday(req.Date, now); err != nil {
		return fmt.Errorf("%w: appointment date must be today or later", ErrPastDate)
	}

	if !domain.ValidStatus(req.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateTime проверяет время начала против расписания филиала
func validateTime(req *Request, schedule domain.WeekSchedule) error {
	if err := schedule.IsOpenOn(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrBranchClosed, err)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: appointment time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid appointment time: %v", ErrInvalidInput, err)
	}

	if err := schedule.IsBookable(req.Date, req.StartTime); err != nil {
		return fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	}

	return nil
}

// validateSeatBinding проверяется последней: любой статус кроме pending
// подразумевает привязанное место
func validateSeatBinding(req *Request) error {
	if domain.AppointmentStatus(req.Status) != domain.StatusPending && req.SeatID == nil {
		return ErrSeatRequired
	}
	return nil
}

// validateServices проверяет выбранные услуги и их цены
func validateServices(services []ServiceSelection) error {
	if len(services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	for _, s := range services {
		if s.ID <= 0 {
			return fmt.Errorf("%w: service id must be positive", ErrInvalidInput)
		}
		if numparse.FloatOrZero(s.Price) < 0 {
			return fmt.Errorf("%w: service price must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}
