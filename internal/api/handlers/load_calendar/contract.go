package load_calendar

import (
	"context"

	loadCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/load_calendar"
)

type LoadCalendarUseCase interface {
	Execute(ctx context.Context, req *loadCalendar.Request) (*loadCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
