package get_load_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability"
)

const (
	msgInvalidLimit = "некорректный limit, ожидается число от 1 до 100"
	msgDisabled     = "журнал загрузок отключен"
)

type Handler struct {
	service LoadHistoryService
	logger  Logger
}

func NewHandler(service LoadHistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/loads
// Query params: limit (optional, default 20), spreadsheet_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.logger.Warn("GET /calendar/loads - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	spreadsheetID := r.URL.Query().Get("spreadsheet_id")

	history, err := h.service.ListLoads(r.Context(), spreadsheetID, limit)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrLoadLogDisabled):
			h.logger.Warn("GET /calendar/loads - Load journal is disabled")
			handlers.RespondNotFound(w, msgDisabled)

		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /calendar/loads - Failed to list loads: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, history)
}
