package release_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatassign"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgIllegalTransition    = "снять с места можно только обслуживаемую запись"
	msgConflict             = "возврат отклонён удалённым сервисом"
	msgUnauthorized         = "сессия администратора истекла"
)

type Handler struct {
	service SeatAssignService
	logger  Logger
}

func NewHandler(service SeatAssignService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/release - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.ReleaseToPending(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, seatassign.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/release - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, seatassign.ErrIllegalTransition):
			h.logger.Warn("POST /appointments/{id}/release - Illegal transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, seatassign.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, seatassign.ErrConflict):
			h.logger.Warn("POST /appointments/{id}/release - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, seatassign.ErrUnauthorized):
			h.logger.Warn("POST /appointments/{id}/release - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments/{id}/release - Failed to release: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/release - Appointment released: appointment_id=%d, seat_id=%d",
		appointmentID, result.ReleasedSeatID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
