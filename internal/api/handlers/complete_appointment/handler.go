package complete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgIllegalTransition    = "завершить можно только обслуживаемую запись"
	msgConflict             = "завершение отклонено сервисом записей"
	msgUnauthorized         = "сессия администратора истекла"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.Complete(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/complete - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrIllegalTransition):
			h.logger.Warn("POST /appointments/{id}/complete - Illegal transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, appointments.ErrConflict):
			h.logger.Warn("POST /appointments/{id}/complete - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("POST /appointments/{id}/complete - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments/{id}/complete - Failed to complete: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/complete - Appointment completed: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
