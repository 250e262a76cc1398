package get_calendar_info

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetCalendarInfo(r.Context())
	if err != nil {
		h.logger.Warn("GET /calendar/info - Failed to get calendar info: %v", err)
		handlers.RespondCalendarError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, info)
}
