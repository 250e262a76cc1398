package get_available_rooms

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetAvailableRooms(ctx context.Context, req *models.AvailableRoomsRequest) (*models.AvailableRoomsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
