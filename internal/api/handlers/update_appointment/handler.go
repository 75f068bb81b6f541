package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	updateAppointment "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректная дата или время записи"
	msgInvalidInput         = "некорректные данные формы записи"
	msgNotFound             = "запись не найдена"
	msgNotEditable          = "завершённую или отменённую запись нельзя изменить"
	msgSeatRequired         = "для выбранного статуса требуется место"
	msgPastDate             = "дата записи не может быть в прошлом"
	msgBranchClosed         = "филиал закрыт в выбранный день"
	msgOutsideWorkingHours  = "время записи вне рабочих часов филиала"
	msgConflict             = "обновление отклонено сервисом записей"
	msgUnauthorized         = "сессия администратора истекла"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PUT /appointments/{id} - Not editable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrSeatRequired):
			h.logger.Warn("PUT /appointments/{id} - Seat required: appointment_id=%d, status=%s", appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgSeatRequired)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrPastDate):
			h.logger.Warn("PUT /appointments/{id} - Past date: appointment_id=%d, date=%s", appointmentID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, updateAppointment.ErrBranchClosed):
			h.logger.Warn("PUT /appointments/{id} - Branch closed: appointment_id=%d, date=%s", appointmentID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, updateAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("PUT /appointments/{id} - Outside working hours: appointment_id=%d, time=%s", appointmentID, req.AppointmentTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, updateAppointment.ErrConflict):
			h.logger.Warn("PUT /appointments/{id} - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, updateAppointment.ErrUnauthorized):
			h.logger.Warn("PUT /appointments/{id} - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
