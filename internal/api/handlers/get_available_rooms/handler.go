package get_available_rooms

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

// Handle POST /api/v1/rooms/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailableRoomsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/available - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /rooms/available - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetAvailableRooms(r.Context(), serviceReq)
	if err != nil {
		h.logger.Warn("POST /rooms/available - Failed to get available rooms: %v", err)
		handlers.RespondCalendarError(w, err)
		return
	}

	h.logger.Info("POST /rooms/available - Found %d rooms: checkIn=%s, checkOut=%s",
		result.Count, result.CheckIn, result.CheckOut)
	handlers.RespondJSON(w, http.StatusOK, result)
}
