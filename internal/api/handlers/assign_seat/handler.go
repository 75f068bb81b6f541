package assign_seat

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные запроса"
	msgAppointmentNotFound  = "запись не найдена"
	msgSeatNotFound         = "место не найдено"
	msgSeatOccupied         = "место занято другой записью"
	msgSeatUnavailable      = "место недоступно для записи"
	msgIllegalTransition    = "текущий статус записи не допускает назначение места"
	msgConflict             = "назначение отклонено удалённым сервисом"
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

// Handle POST /api/v1/appointments/{appointmentId}/assign-seat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/assign-seat - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req AssignSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/assign-seat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AssignToSeat(r.Context(), appointmentID, req.SeatID)
	if err != nil {
		h.respondError(w, appointmentID, req.SeatID, err)
		return
	}

	h.logger.Info("POST /appointments/{id}/assign-seat - Seat assigned: appointment_id=%d, seat_id=%d, status=%s",
		appointmentID, req.SeatID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}

func (h *Handler) respondError(w http.ResponseWriter, appointmentID, seatID int64, err error) {
	switch {
	case errors.Is(err, seatassign.ErrAppointmentNotFound):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Appointment not found: appointment_id=%d", appointmentID)
		handlers.RespondNotFound(w, msgAppointmentNotFound)

	case errors.Is(err, seatassign.ErrSeatNotFound):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Seat not found: seat_id=%d", seatID)
		handlers.RespondNotFound(w, msgSeatNotFound)

	case errors.Is(err, seatassign.ErrSeatOccupied):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Seat occupied: appointment_id=%d, seat_id=%d", appointmentID, seatID)
		handlers.RespondConflict(w, msgSeatOccupied)

	case errors.Is(err, seatassign.ErrSeatUnavailable):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Seat unavailable: appointment_id=%d, seat_id=%d", appointmentID, seatID)
		handlers.RespondConflict(w, msgSeatUnavailable)

	case errors.Is(err, seatassign.ErrIllegalTransition):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Illegal transition: appointment_id=%d", appointmentID)
		handlers.RespondConflict(w, msgIllegalTransition)

	case errors.Is(err, seatassign.ErrInvalidInput):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Invalid input: appointment_id=%d: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, seatassign.ErrConflict):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Conflict: appointment_id=%d: %v", appointmentID, err)
		handlers.RespondConflict(w, msgConflict)

	case errors.Is(err, seatassign.ErrUnauthorized):
		h.logger.Warn("POST /appointments/{id}/assign-seat - Unauthorized: appointment_id=%d", appointmentID)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	default:
		h.logger.Error("POST /appointments/{id}/assign-seat - Failed to assign seat: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
	}
}
