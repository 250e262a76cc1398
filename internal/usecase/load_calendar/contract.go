package load_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/snapshot"
)

// GridSource источник таблицы (Google Sheets напрямую или через кэш)
type GridSource interface {
	GetGrid(ctx context.Context, spreadsheetID, sheetName string) (domain.Grid, error)
}

// GridCache кэш таблиц, сбрасывается при принудительной загрузке
type GridCache interface {
	Invalidate(ctx context.Context, spreadsheetID, sheetName string) error
}

// SnapshotStore хранилище текущего снимка календаря
type SnapshotStore interface {
	Replace(entry *snapshot.Entry) *snapshot.Entry
}

// LoadLogRepository журнал загрузок календаря
type LoadLogRepository interface {
	Create(ctx context.Context, record *domain.LoadRecord) (*domain.LoadRecord, error)
}

// Metrics метрики загрузок
type Metrics interface {
	ObserveLoad(mode, result string, duration time.Duration)
	SetSnapshot(dates, rooms int, loadedAt time.Time)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
