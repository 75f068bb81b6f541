package get_seat_map

import (
	"errors"
	"net/http"

	"github.com/rk49trivedi/appsalozy-sub000/internal/api/handlers"
	"github.com/rk49trivedi/appsalozy-sub000/internal/service/seatmap"
)

const msgUnauthorized = "сессия администратора истекла"

type Handler struct {
	service SeatMapService
	logger  Logger
}

func NewHandler(service SeatMapService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/seat-map
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.GetSnapshot(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, seatmap.ErrUnauthorized):
			h.logger.Warn("GET /seat-map - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /seat-map - Failed to get seat map: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /seat-map - Seat map retrieved: %d seats, %d available",
		len(snapshot.Seats), snapshot.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, FromServiceSnapshot(snapshot))
}
