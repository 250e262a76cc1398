package get_calendar_info

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type CalendarService interface {
	GetCalendarInfo(ctx context.Context) (*models.CalendarInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
