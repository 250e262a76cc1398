package health

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

// Response ответ проверки состояния
type Response struct {
	Status         string `json:"status"`
	CalendarLoaded bool   `json:"calendarLoaded"`
}

type Handler struct {
	state CalendarState
}

func NewHandler(state CalendarState) *Handler {
	return &Handler{state: state}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:         "ok",
		CalendarLoaded: h.state.Loaded(),
	})
}
