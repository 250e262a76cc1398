package gridcache

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// GridSource источник таблицы, перед которым стоит кэш
type GridSource interface {
	GetGrid(ctx context.Context, spreadsheetID, sheetName string) (domain.Grid, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
