package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StartDateFormats допустимые форматы даты начала календаря (DATE_START)
var StartDateFormats = []string{
	"02.01.2006", // DD.MM.YYYY
	"02/01/2006", // DD/MM/YYYY
	"2006-01-02", // YYYY-MM-DD
	"2.1.2006",
	"2/1/2006",
}

// Grid layout constants
const (
	CategoryColumn  = 0 // колонка A - категория номера
	RoomColumn      = 1 // колонка B - номер комнаты
	FirstDateColumn = 2 // первая колонка, в которой могут быть даты (C)
)

// Header resolution limits
const (
	// MaxDates ограничивает количество дат в календаре (2 года)
	MaxDates = 730
	// AutoDetectMaxRows количество строк сверху, в которых ищется заголовок с датами
	AutoDetectMaxRows = 30
	// MinHeaderRun минимальная длина последовательности номеров дней для признания строки заголовком
	MinHeaderRun = 2
)

// Calendar info constants
const (
	SampleDatesCount = 10
)

// CategoryFilterAll значение фильтра категории, означающее "все категории"
const CategoryFilterAll = "ALL"
