package get_available_categories

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/categories/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CategoriesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories/available - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /categories/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetAvailableCategories(r.Context(), serviceReq)
	if err != nil {
		h.logger.Warn("POST /categories/available - Failed to get categories: %v", err)
		handlers.RespondCalendarError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
