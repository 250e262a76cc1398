package calendar

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Snapshot неизменяемое представление одной успешной загрузки календаря.
// Все методы безопасны для одновременного чтения из нескольких горутин.
type Snapshot struct {
	mode         domain.HeaderMode
	headerRow    int
	dataStartRow int
	columns      []domain.DateColumn
	dates        []time.Time // по возрастанию
	dateSet      map[time.Time]struct{}
	rooms        []domain.RoomRecord
	roomIndex    map[string]int
}

// Build разбирает таблицу: определяет даты выбранной стратегией и строит таблицу номеров
func Build(grid domain.Grid, cfg HeaderConfig) (*Snapshot, error) {
	resolution, err := Resolve(grid, cfg)
	if err != nil {
		return nil, err
	}

	rooms := BuildRooms(grid, resolution.DataStartRow(), resolution.Columns)
	return NewSnapshot(resolution, rooms), nil
}

// NewSnapshot собирает снимок из результата разбора заголовка и записей номеров
func NewSnapshot(resolution *Resolution, rooms []domain.RoomRecord) *Snapshot {
	s := &Snapshot{
		mode:         resolution.Mode,
		headerRow:    resolution.HeaderRow,
		dataStartRow: resolution.DataStartRow(),
		columns:      append([]domain.DateColumn(nil), resolution.Columns...),
		dates:        make([]time.Time, 0, len(resolution.Columns)),
		dateSet:      make(map[time.Time]struct{}, len(resolution.Columns)),
		rooms:        append([]domain.RoomRecord(nil), rooms...),
		roomIndex:    make(map[string]int, len(rooms)),
	}

	for _, dc := range s.columns {
		if _, exists := s.dateSet[dc.Date]; exists {
			continue
		}
		s.dateSet[dc.Date] = struct{}{}
		s.dates = append(s.dates, dc.Date)
	}
	sort.Slice(s.dates, func(i, j int) bool { return s.dates[i].Before(s.dates[j]) })

	for i, room := range s.rooms {
		// при повторе номера выигрывает первая строка
		if _, exists := s.roomIndex[room.RoomID]; !exists {
			s.roomIndex[room.RoomID] = i
		}
	}

	return s
}

// Mode способ, которым были определены даты
func (s *Snapshot) Mode() domain.HeaderMode {
	return s.mode
}

// HeaderRow 0-based индекс строки заголовка
func (s *Snapshot) HeaderRow() int {
	return s.headerRow
}

// DataStartRow 0-based индекс первой строки с номерами
func (s *Snapshot) DataStartRow() int {
	return s.dataStartRow
}

// Columns сопоставление колонок датам
func (s *Snapshot) Columns() []domain.DateColumn {
	return append([]domain.DateColumn(nil), s.columns...)
}

// Dates даты календаря по возрастанию
func (s *Snapshot) Dates() []time.Time {
	return append([]time.Time(nil), s.dates...)
}

// Rooms записи номеров в порядке строк таблицы
func (s *Snapshot) Rooms() []domain.RoomRecord {
	return append([]domain.RoomRecord(nil), s.rooms...)
}

// DateRange минимальная и максимальная дата календаря
func (s *Snapshot) DateRange() domain.DateRange {
	if len(s.dates) == 0 {
		return domain.DateRange{}
	}
	return domain.DateRange{Min: s.dates[0], Max: s.dates[len(s.dates)-1]}
}

// HasDate проверяет наличие даты в календаре
func (s *Snapshot) HasDate(date time.Time) bool {
	_, ok := s.dateSet[domain.DateOnly(date)]
	return ok
}

// Info метаданные календаря; строки в ответе 1-based
func (s *Snapshot) Info() domain.CalendarInfo {
	years := make([]int, 0)
	for _, d := range s.dates {
		if len(years) == 0 || years[len(years)-1] != d.Year() {
			years = append(years, d.Year())
		}
	}

	sample := s.dates
	if len(sample) > domain.SampleDatesCount {
		sample = sample[:domain.SampleDatesCount]
	}

	return domain.CalendarInfo{
		TotalDates:   len(s.dates),
		DateRange:    s.DateRange(),
		Years:        years,
		HeaderRow:    s.headerRow + 1,
		DataStartRow: s.dataStartRow + 1,
		SampleDates:  append([]time.Time(nil), sample...),
	}
}
