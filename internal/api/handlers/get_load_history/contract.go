package get_load_history

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
)

type LoadHistoryService interface {
	ListLoads(ctx context.Context, spreadsheetID string, limit uint64) (*models.LoadHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
