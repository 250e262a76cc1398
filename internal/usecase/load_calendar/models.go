package load_calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Request модель запроса на загрузку календаря.
// Пустые поля заполняются значениями по умолчанию из конфигурации.
type Request struct {
	SpreadsheetID string // ID таблицы Google Sheets
	SheetName     string // имя листа, пусто - первый лист
	DateStartCell string // стартовая ячейка дат, например "C7"
	DateStart     string // дата начала, например "24.11.2025"
	AutoDetect    bool   // игнорировать стартовую ячейку и искать заголовок автоматически
	Refresh       bool   // сбросить кэш таблицы перед загрузкой
}

// Defaults значения по умолчанию из конфигурации
type Defaults struct {
	SpreadsheetID string
	SheetName     string
	DateStartCell string
	DateStart     string
	Year          int
}

// Response модель ответа с результатом загрузки
type Response struct {
	Mode          domain.HeaderMode
	SpreadsheetID string
	SheetName     string
	HeaderRow     int // 1-based
	DataStartRow  int // 1-based
	DatesFound    int
	RoomsFound    int
	DateRange     domain.DateRange
	LoadedAt      time.Time
}
