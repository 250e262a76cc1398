package check_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingRoom        = "номер комнаты обязателен"
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

// Handle POST /api/v1/rooms/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /rooms/check - Invalid request: %v", err)
		if errors.Is(err, errMissingRoom) {
			handlers.RespondBadRequest(w, msgMissingRoom)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.CheckRoom(r.Context(), serviceReq)
	if err != nil {
		h.logger.Warn("POST /rooms/check - Failed to check room %q: %v", serviceReq.RoomID, err)
		handlers.RespondCalendarError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
