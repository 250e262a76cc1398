package check_room

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckRoom(ctx context.Context, req *models.CheckRoomRequest) (*models.CheckRoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
