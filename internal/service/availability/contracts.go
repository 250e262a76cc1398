package availability

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/snapshot"
)

// SnapshotStore хранилище текущего снимка календаря
type SnapshotStore interface {
	Get() (*snapshot.Entry, error)
}

// LoadLogRepository журнал загрузок календаря
type LoadLogRepository interface {
	ListRecent(ctx context.Context, spreadsheetID string, limit uint64) ([]*domain.LoadRecord, error)
}

// Metrics метрики запросов доступности
type Metrics interface {
	ObserveAvailableRooms(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
