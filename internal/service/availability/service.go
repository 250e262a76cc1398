package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendar"
)

// Service сервис запросов доступности по текущему снимку календаря
type Service struct {
	store   SnapshotStore
	loadLog LoadLogRepository
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса.
// loadLog и metrics опциональны (nil - не используются).
func NewService(
	store SnapshotStore,
	loadLog LoadLogRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		store:   store,
		loadLog: loadLog,
		metrics: metrics,
		logger:  logger,
	}
}

// GetAvailableRooms возвращает номера, свободные на каждую дату периода [checkIn, checkOut)
func (s *Service) GetAvailableRooms(ctx context.Context, req *models.AvailableRoomsRequest) (*models.AvailableRoomsResponse, error) {
	s.logger.Info("GetAvailableRooms: checkIn=%s, checkOut=%s, category=%q",
		models.FormatDate(req.CheckIn), models.FormatDate(req.CheckOut), req.Category)

	entry, err := s.current()
	if err != nil {
		return nil, err
	}

	rooms, err := entry.Snapshot.RangeAvailable(req.CheckIn, req.CheckOut, req.Category)
	if err != nil {
		s.logger.Warn("GetAvailableRooms: %v", err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveAvailableRooms(len(rooms))
	}

	resp := &models.AvailableRoomsResponse{
		AvailableRooms: models.FromDomainRooms(rooms),
		Count:          len(rooms),
		CheckIn:        models.FormatDate(req.CheckIn),
		CheckOut:       models.FormatDate(req.CheckOut),
	}
	if req.Category != "" {
		category := req.Category
		resp.CategoryFilter = &category
	}

	s.logger.Info("GetAvailableRooms: found %d rooms", len(rooms))
	return resp, nil
}

// CheckRoom проверяет, свободен ли номер на дату
func (s *Service) CheckRoom(ctx context.Context, req *models.CheckRoomRequest) (*models.CheckRoomResponse, error) {
	s.logger.Info("CheckRoom: room=%q, date=%s", req.RoomID, models.FormatDate(req.Date))

	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	entry, err := s.current()
	if err != nil {
		return nil, err
	}

	available, err := entry.Snapshot.RoomAvailableOn(req.RoomID, req.Date)
	if err != nil {
		s.logger.Warn("CheckRoom: %v", err)
		return nil, err
	}

	return &models.CheckRoomResponse{
		RoomID:    req.RoomID,
		Date:      models.FormatDate(req.Date),
		Available: available,
	}, nil
}

// GetAvailableCategories возвращает категории, в которых есть хотя бы один свободный на период номер
func (s *Service) GetAvailableCategories(ctx context.Context, req *models.CategoriesRequest) (*models.CategoriesResponse, error) {
	s.logger.Info("GetAvailableCategories: checkIn=%s, checkOut=%s",
		models.FormatDate(req.CheckIn), models.FormatDate(req.CheckOut))

	entry, err := s.current()
	if err != nil {
		return nil, err
	}

	categories, err := entry.Snapshot.CategoriesWithAvailability(req.CheckIn, req.CheckOut)
	if err != nil {
		s.logger.Warn("GetAvailableCategories: %v", err)
		return nil, err
	}

	return &models.CategoriesResponse{
		Categories: categories,
		CheckIn:    models.FormatDate(req.CheckIn),
		CheckOut:   models.FormatDate(req.CheckOut),
	}, nil
}

// GetCalendarInfo возвращает сведения о загруженном календаре
func (s *Service) GetCalendarInfo(ctx context.Context) (*models.CalendarInfoResponse, error) {
	entry, err := s.current()
	if err != nil {
		return nil, err
	}

	info := entry.Snapshot.Info()
	resp := &models.CalendarInfoResponse{
		SpreadsheetID: entry.SpreadsheetID,
		Mode:          string(entry.Snapshot.Mode()),
		LoadedAt:      entry.LoadedAt,
		TotalDates:    info.TotalDates,
		TotalRooms:    len(entry.Snapshot.Rooms()),
		DateRange:     models.FromDomainDateRange(info.DateRange),
		Years:         info.Years,
		HeaderRow:     info.HeaderRow,
		DataStartRow:  info.DataStartRow,
		SampleDates:   models.FormatDates(info.SampleDates),
	}
	if entry.SheetName != "" {
		name := entry.SheetName
		resp.SheetName = &name
	}

	return resp, nil
}

// Loaded проверяет, загружен ли календарь
func (s *Service) Loaded() bool {
	_, err := s.store.Get()
	return err == nil
}

// ListLoads возвращает последние загрузки календаря из журнала
func (s *Service) ListLoads(ctx context.Context, spreadsheetID string, limit uint64) (*models.LoadHistoryResponse, error) {
	if s.loadLog == nil {
		return nil, ErrLoadLogDisabled
	}
	if limit == 0 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	}

	records, err := s.loadLog.ListRecent(ctx, spreadsheetID, limit)
	if err != nil {
		s.logger.Error("ListLoads: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListLoads - repository error: %v", ErrInternal, err)
	}

	loads := make([]models.LoadRecordResponse, 0, len(records))
	for _, r := range records {
		loads = append(loads, models.FromDomainLoadRecord(r))
	}

	return &models.LoadHistoryResponse{Loads: loads, Total: len(loads)}, nil
}

func (s *Service) current() (*snapshot.Entry, error) {
	entry, err := s.store.Get()
	if err != nil {
		if errors.Is(err, snapshot.ErrSnapshotNotFound) {
			s.logger.Warn("calendar is not loaded yet")
			return nil, calendar.ErrNoCalendarLoaded
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return entry, nil
}
