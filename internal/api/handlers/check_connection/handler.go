package check_connection

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

type Handler struct {
	client               SheetsClient
	defaultSpreadsheetID string
	logger               Logger
}

func NewHandler(client SheetsClient, defaultSpreadsheetID string, logger Logger) *Handler {
	return &Handler{
		client:               client,
		defaultSpreadsheetID: defaultSpreadsheetID,
		logger:               logger,
	}
}

// Handle GET /api/v1/connection/check
// Query params: spreadsheet_id (optional, по умолчанию из конфигурации)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spreadsheetID := r.URL.Query().Get("spreadsheet_id")
	if spreadsheetID == "" {
		spreadsheetID = h.defaultSpreadsheetID
	}

	status := h.client.CheckConnection(r.Context(), spreadsheetID)

	h.logger.Info("GET /connection/check - spreadsheet=%q, message=%s", spreadsheetID, status.Message)
	handlers.RespondJSON(w, http.StatusOK, FromConnectionStatus(status))
}
