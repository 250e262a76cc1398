package check_connection

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/sheets"
)

type SheetsClient interface {
	CheckConnection(ctx context.Context, spreadsheetID string) *sheets.ConnectionStatus
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
