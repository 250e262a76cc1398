package load_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/service/availability/models"
	loadCalendar "github.com/m04kA/SMC-CalendarService/internal/usecase/load_calendar"
)

// LoadCalendarRequest HTTP запрос на загрузку календаря, все поля опциональны
type LoadCalendarRequest struct {
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
	SheetName     string `json:"sheetName,omitempty"`
	DateStartCell string `json:"dateStartCell,omitempty"`
	DateStart     string `json:"dateStart,omitempty"`
	AutoDetect    bool   `json:"autoDetect,omitempty"`
	Refresh       bool   `json:"refresh,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoadCalendarRequest) ToUseCaseRequest() *loadCalendar.Request {
	return &loadCalendar.Request{
		SpreadsheetID: r.SpreadsheetID,
		SheetName:     r.SheetName,
		DateStartCell: r.DateStartCell,
		DateStart:     r.DateStart,
		AutoDetect:    r.AutoDetect,
		Refresh:       r.Refresh,
	}
}

// LoadCalendarResponse HTTP ответ с результатом загрузки
type LoadCalendarResponse struct {
	Success       bool                     `json:"success"`
	Message       string                   `json:"message"`
	Mode          string                   `json:"mode"`
	SpreadsheetID string                   `json:"spreadsheetId"`
	SheetName     *string                  `json:"sheetName,omitempty"`
	HeaderRow     int                      `json:"headerRow"`
	DataStartRow  int                      `json:"dataStartRow"`
	DatesFound    int                      `json:"datesFound"`
	RoomsFound    int                      `json:"roomsFound"`
	DateRange     models.DateRangeResponse `json:"dateRange"`
	LoadedAt      time.Time                `json:"loadedAt"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *loadCalendar.Response) *LoadCalendarResponse {
	result := &LoadCalendarResponse{
		Success:       true,
		Message:       msgLoaded,
		Mode:          string(resp.Mode),
		SpreadsheetID: resp.SpreadsheetID,
		HeaderRow:     resp.HeaderRow,
		DataStartRow:  resp.DataStartRow,
		DatesFound:    resp.DatesFound,
		RoomsFound:    resp.RoomsFound,
		DateRange:     models.FromDomainDateRange(resp.DateRange),
		LoadedAt:      resp.LoadedAt,
	}
	if resp.SheetName != "" {
		name := resp.SheetName
		result.SheetName = &name
	}
	return result
}
