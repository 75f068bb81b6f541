package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	"github.com/rk49trivedi/appsalozy-sub000/internal/integrations/branchservice"
)

const msgUnauthorized = "сессия администратора истекла"

type Handler struct {
	branch BranchClient
	logger Logger
}

func NewHandler(branch BranchClient, logger Logger) *Handler {
	return &Handler{
		branch: branch,
		logger: logger,
	}
}

// Handle GET /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.branch.GetWorkingHours(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, branchservice.ErrUnauthorized):
			h.logger.Warn("GET /working-hours - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /working-hours - Failed to get working hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /working-hours - Working hours retrieved: %d days", len(hours.WorkingHours))
	handlers.RespondJSON(w, http.StatusOK, FromClientResponse(hours))
}
