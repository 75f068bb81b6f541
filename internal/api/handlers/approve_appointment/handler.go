package approve_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	approveAppointment "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/approve_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные запроса"
	msgNotFound             = "запись не найдена"
	msgNotApprovable        = "подтвердить можно только новую запись без места"
	msgNoServices           = "в записи нет ни одной услуги"
	msgSeatUnavailable      = "выбранное место занято"
	msgConflict             = "подтверждение отклонено сервисом записей"
	msgUnauthorized         = "сессия администратора истекла"
)

type Handler struct {
	useCase ApproveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ApproveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/approve - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ApproveAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveAppointment.Request{
		AppointmentID: appointmentID,
		SeatID:        req.SeatID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/approve - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveAppointment.ErrNotApprovable):
			h.logger.Warn("POST /appointments/{id}/approve - Not approvable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotApprovable)

		case errors.Is(err, approveAppointment.ErrNoServices):
			h.logger.Warn("POST /appointments/{id}/approve - No services: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, approveAppointment.ErrSeatUnavailable):
			h.logger.Warn("POST /appointments/{id}/approve - Seat unavailable: appointment_id=%d, seat_id=%d", appointmentID, req.SeatID)
			handlers.RespondConflict(w, msgSeatUnavailable)

		case errors.Is(err, approveAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/approve - Invalid input: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, approveAppointment.ErrConflict):
			h.logger.Warn("POST /appointments/{id}/approve - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, approveAppointment.ErrUnauthorized):
			h.logger.Warn("POST /appointments/{id}/approve - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments/{id}/approve - Failed to approve: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/approve - Appointment approved: appointment_id=%d, seat_id=%d", appointmentID, req.SeatID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
