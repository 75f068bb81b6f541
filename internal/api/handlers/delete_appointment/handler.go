package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	"github.com/rk49trivedi/appsalozy-sub000/internal/api/middleware"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgNotDeletable         = "удалять можно только неподтверждённые и отменённые записи"
	msgConflict             = "удаление отклонено сервисом записей"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrNotDeletable):
			h.logger.Warn("DELETE /appointments/{id} - Not deletable: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotDeletable)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, appointments.ErrConflict):
			h.logger.Warn("DELETE /appointments/{id} - Conflict: appointment_id=%d: %v", appointmentID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, appointments.ErrUnauthorized):
			h.logger.Warn("DELETE /appointments/{id} - Unauthorized: appointment_id=%d", appointmentID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// удаление необратимо, фиксируем в логе инициатора
	adminID, _ := middleware.GetAdminID(r.Context())
	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: appointment_id=%d, admin_id=%d", appointmentID, adminID)
	w.WriteHeader(http.StatusNoContent)
}
