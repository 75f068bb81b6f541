package create_appointment

import (
	"errors"
	"net/http"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	createAppointment "github.com/rk49trivedi/appsalozy-sub000/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:mm"
	msgInvalidInput        = "некорректные данные формы записи"
	msgPastDate            = "дата записи не может быть в прошлом"
	msgBranchClosed        = "филиал закрыт в выбранный день"
	msgOutsideWorkingHours = "время записи вне рабочих часов филиала"
	msgConflict            = "запись отклонена сервисом записей"
	msgUnauthorized        = "сессия администратора истекла"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if req.AppointmentDate != "" && len(req.AppointmentDate) == 10 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d: %v", req.CustomerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: customer_id=%d, date=%s", req.CustomerID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrBranchClosed):
			h.logger.Warn("POST /appointments - Branch closed: customer_id=%d, date=%s", req.CustomerID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: customer_id=%d, time=%s", req.CustomerID, req.AppointmentTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrConflict):
			h.logger.Warn("POST /appointments - Conflict: customer_id=%d: %v", req.CustomerID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createAppointment.ErrUnauthorized):
			h.logger.Warn("POST /appointments - Unauthorized: customer_id=%d", req.CustomerID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v", req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%d", result.ID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
