package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модели

// AvailableRoomsRequest запрос свободных номеров на период
type AvailableRoomsRequest struct {
	CheckIn  time.Time // дата заезда (включительно)
	CheckOut time.Time // дата выезда (не включительно)
	Category string    // пусто - все категории
}

// CheckRoomRequest запрос доступности номера на дату
type CheckRoomRequest struct {
	RoomID string
	Date   time.Time
}

// CategoriesRequest запрос категорий со свободными номерами
type CategoriesRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Response модели

// RoomResponse свободный номер
type RoomResponse struct {
	Category string `json:"category"`
	RoomID   string `json:"room"`
}

// AvailableRoomsResponse свободные номера на период
type AvailableRoomsResponse struct {
	AvailableRooms []RoomResponse `json:"availableRooms"`
	Count          int            `json:"count"`
	CheckIn        string         `json:"checkIn"`
	CheckOut       string         `json:"checkOut"`
	CategoryFilter *string        `json:"categoryFilter,omitempty"`
}

// CheckRoomResponse доступность номера на дату
type CheckRoomResponse struct {
	RoomID    string `json:"roomNumber"`
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// CategoriesResponse категории со свободными номерами
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
}

// DateRangeResponse диапазон дат
type DateRangeResponse struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// CalendarInfoResponse сведения о загруженном календаре
type CalendarInfoResponse struct {
	SpreadsheetID string            `json:"spreadsheetId"`
	SheetName     *string           `json:"sheetName,omitempty"`
	Mode          string            `json:"mode"`
	LoadedAt      time.Time         `json:"loadedAt"`
	TotalDates    int               `json:"totalDates"`
	TotalRooms    int               `json:"totalRooms"`
	DateRange     DateRangeResponse `json:"dateRange"`
	Years         []int             `json:"years"`
	HeaderRow     int               `json:"headerRow"`
	DataStartRow  int               `json:"dataStartRow"`
	SampleDates   []string          `json:"sampleDates"`
}

// LoadRecordResponse запись журнала загрузок
type LoadRecordResponse struct {
	ID            int64             `json:"id"`
	SpreadsheetID string            `json:"spreadsheetId"`
	SheetName     *string           `json:"sheetName,omitempty"`
	Mode          string            `json:"mode"`
	DatesFound    int               `json:"datesFound"`
	RoomsFound    int               `json:"roomsFound"`
	DateRange     DateRangeResponse `json:"dateRange"`
	LoadedAt      time.Time         `json:"loadedAt"`
}

// LoadHistoryResponse журнал загрузок
type LoadHistoryResponse struct {
	Loads []LoadRecordResponse `json:"loads"`
	Total int                  `json:"total"`
}

// Конвертеры

// FormatDate форматирует календарную дату как YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// FormatDates форматирует список дат
func FormatDates(dates []time.Time) []string {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, FormatDate(d))
	}
	return result
}

// FromDomainRooms конвертирует свободные номера
func FromDomainRooms(rooms []domain.AvailableRoom) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomResponse{Category: r.Category, RoomID: r.RoomID})
	}
	return result
}

// FromDomainDateRange конвертирует диапазон дат
func FromDomainDateRange(r domain.DateRange) DateRangeResponse {
	return DateRangeResponse{Min: FormatDate(r.Min), Max: FormatDate(r.Max)}
}

// FromDomainLoadRecord конвертирует запись журнала
func FromDomainLoadRecord(r *domain.LoadRecord) LoadRecordResponse {
	return LoadRecordResponse{
		ID:            r.ID,
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     r.SheetName,
		Mode:          string(r.Mode),
		DatesFound:    r.DatesFound,
		RoomsFound:    r.RoomsFound,
		DateRange:     DateRangeResponse{Min: FormatDate(r.MinDate), Max: FormatDate(r.MaxDate)},
		LoadedAt:      r.LoadedAt,
	}
}
