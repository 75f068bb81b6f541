package move_seat

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
	msgIllegalTransition    = "перенести можно только запись с назначенным местом"
	msgConflict             = "перенос отклонён удалённым сервисом"
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

// Handle POST /api/v1/appointments/{appointmentId}/move-seat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/move-seat - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req MoveSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/move-seat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MoveToSeat(r.Context(), appointmentID, req.SeatID)
	if err != nil {
		switch {
		case errors.Is(err, seatassign.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/move-seat - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, seatassign.ErrSeatNotFound):
			h.logger.Warn("POST /appointments/{id}/move-seat - Seat not found: seat_id=%d", req.SeatID)
			handlers.RespondNotFound(w, msgSeatNotFound)

		case errors.Is(err, seatassign.ErrSeatOccupied):
			h.logger.Warn("POST /appointments/{id}/move-seat - Seat occupied: appointment_id=%d, seat_id=%d", appointmentID, req.SeatID)
			handlers.RespondConflict(w, msgSeatOccupied)

		case errors.Is(err, seatassign.ErrSeatUnavailable):
			h.logger.Warn("POST /appointments/{id}/move-seat - Seat unavailable: appointment_id=%d, seat_id=%d", appointmentID, req.SeatID)
			handlers.RespondConflict(w, msgSeatUnavailable)

		case errors.Is(err, seatassign.ErrIllegalTransition):
			h.logger.Warn("POST /appointments/{id}/move-seat - Illegal transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgIllegalTransition)

		case errors.Is(err, seatassign.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/move-seat - Invalid input: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, seatassign.ErrConflict):
			h.logger.Warn("POST /appointments/{id}/move-seat - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, seatassign.ErrUnauthorized):
			h.logger.Warn("POST /appointments/{id}/move-seat - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments/{id}/move-seat - Failed to move seat: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/move-seat - Move handled: appointment_id=%d, seat_id=%d, moved=%t",
		appointmentID, req.SeatID, result.Moved)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
