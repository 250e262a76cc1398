package domain

import "time"

// HeaderMode способ определения колонок с датами
type HeaderMode string

const (
	HeaderModeManual     HeaderMode = "manual"
	HeaderModeAutoDetect HeaderMode = "auto_detect"
)

// DateColumn колонка таблицы, сопоставленная календарной дате
type DateColumn struct {
	Column int
	Date   time.Time
}

// RoomRecord строка таблицы с номером и его занятостью по датам
type RoomRecord struct {
	Row       int // 0-based индекс строки в таблице
	Category  string
	RoomID    string
	Occupancy map[time.Time]bool // true - занято
}

// IsOccupied возвращает занятость номера на дату и признак наличия даты в календаре
func (r *RoomRecord) IsOccupied(date time.Time) (occupied bool, ok bool) {
	occupied, ok = r.Occupancy[date]
	return occupied, ok
}

// AvailableRoom номер, свободный на запрошенный период
type AvailableRoom struct {
	Category string
	RoomID   string
}

// DateRange диапазон дат календаря
type DateRange struct {
	Min time.Time
	Max time.Time
}

// CalendarInfo метаданные загруженного календаря
type CalendarInfo struct {
	TotalDates   int
	DateRange    DateRange
	Years        []int
	HeaderRow    int // 1-based
	DataStartRow int // 1-based
	SampleDates  []time.Time
}

// LoadRecord запись журнала загрузок календаря
type LoadRecord struct {
	ID            int64
	SpreadsheetID string
	SheetName     *string
	Mode          HeaderMode
	DatesFound    int
	RoomsFound    int
	MinDate       time.Time
	MaxDate       time.Time
	LoadedAt      time.Time
}
