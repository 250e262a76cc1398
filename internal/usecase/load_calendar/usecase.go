package load_calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

// UseCase use case загрузки календаря из таблицы
type UseCase struct {
	source       GridSource
	cache        GridCache
	store        SnapshotStore
	loadLog      LoadLogRepository
	metrics      Metrics
	defaults     Defaults
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache, loadLog и metrics опциональны (nil - не используются).
func NewUseCase(
	source GridSource,
	cache GridCache,
	store SnapshotStore,
	loadLog LoadLogRepository,
	metrics Metrics,
	defaults Defaults,
	logger Logger,
) *UseCase {
	return &UseCase{
		source:       source,
		cache:        cache,
		store:        store,
		loadLog:      loadLog,
		metrics:      metrics,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute загружает таблицу, строит новый снимок календаря и атомарно подменяет текущий.
// При любой ошибке текущий снимок остается прежним.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	started := uc.timeProvider.Now()

	// 1. Значения по умолчанию и валидация
	r := applyDefaults(*req, uc.defaults)
	if err := validateRequest(r); err != nil {
		uc.logger.Warn("LoadCalendar: validation failed: %v", err)
		return nil, err
	}

	headerCfg := uc.headerConfig(r, started)
	uc.logger.Info("LoadCalendar: spreadsheet=%s, sheet=%q, mode=%s, cell=%q, start=%q",
		r.SpreadsheetID, r.SheetName, headerCfg.Mode(), r.DateStartCell, r.DateStart)

	// 2. Сброс кэша при принудительной загрузке
	if r.Refresh && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, r.SpreadsheetID, r.SheetName); err != nil {
			uc.logger.Warn("LoadCalendar: failed to invalidate grid cache: %v", err)
		}
	}

	// 3. Получаем таблицу
	grid, err := uc.source.GetGrid(ctx, r.SpreadsheetID, r.SheetName)
	if err != nil {
		uc.logger.Error("LoadCalendar: failed to fetch spreadsheet=%s: %v", r.SpreadsheetID, err)
		uc.observe(headerCfg.Mode(), metrics.LoadResultFailure, started)
		return nil, fmt.Errorf("%w: %w", calendar.ErrSourceUnavailable, err)
	}

	// 4. Строим снимок целиком вне хранилища
	snap, err := calendar.Build(grid, headerCfg)
	if err != nil {
		uc.logger.Warn("LoadCalendar: failed to build calendar: %v", err)
		uc.observe(headerCfg.Mode(), metrics.LoadResultFailure, started)
		return nil, err
	}

	// 5. Подменяем снимок
	loadedAt := uc.timeProvider.Now()
	uc.store.Replace(&snapshot.Entry{
		Snapshot:      snap,
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     r.SheetName,
		LoadedAt:      loadedAt,
	})

	info := snap.Info()
	uc.observe(snap.Mode(), metrics.LoadResultSuccess, started)
	if uc.metrics != nil {
		uc.metrics.SetSnapshot(info.TotalDates, len(snap.Rooms()), loadedAt)
	}

	uc.logger.Info("LoadCalendar: loaded %d dates and %d rooms (header row %d)",
		info.TotalDates, len(snap.Rooms()), info.HeaderRow)

	// 6. Журнал загрузок, ошибка записи не отменяет загрузку
	uc.record(ctx, r, snap, loadedAt)

	return &Response{
		Mode:          snap.Mode(),
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     r.SheetName,
		HeaderRow:     info.HeaderRow,
		DataStartRow:  info.DataStartRow,
		DatesFound:    info.TotalDates,
		RoomsFound:    len(snap.Rooms()),
		DateRange:     info.DateRange,
		LoadedAt:      loadedAt,
	}, nil
}

func (uc *UseCase) headerConfig(r Request, now time.Time) calendar.HeaderConfig {
	if strings.TrimSpace(r.DateStartCell) != "" {
		return calendar.ManualConfig{
			StartCell: strings.TrimSpace(r.DateStartCell),
			StartDate: strings.TrimSpace(r.DateStart),
		}
	}
	return calendar.AutoDetectConfig{
		Year:  uc.defaults.Year,
		Today: now,
	}
}

func (uc *UseCase) observe(mode domain.HeaderMode, result string, started time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ObserveLoad(string(mode), result, uc.timeProvider.Now().Sub(started))
}

func (uc *UseCase) record(ctx context.Context, r Request, snap *calendar.Snapshot, loadedAt time.Time) {
	if uc.loadLog == nil {
		return
	}

	var sheetName *string
	if r.SheetName != "" {
		name := r.SheetName
		sheetName = &name
	}

	dateRange := snap.DateRange()
	record := &domain.LoadRecord{
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     sheetName,
		Mode:          snap.Mode(),
		DatesFound:    len(snap.Dates()),
		RoomsFound:    len(snap.Rooms()),
		MinDate:       dateRange.Min,
		MaxDate:       dateRange.Max,
		LoadedAt:      loadedAt,
	}

	if _, err := uc.loadLog.Create(ctx, record); err != nil {
		uc.logger.Warn("LoadCalendar: failed to write load journal: %v", err)
	}
}
