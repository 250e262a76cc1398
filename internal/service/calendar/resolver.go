package calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// HeaderConfig способ определения колонок с датами: ManualConfig или AutoDetectConfig
type HeaderConfig interface {
	Mode() domain.HeaderMode
}

// ManualConfig задаёт стартовую ячейку дат и, опционально, дату начала.
// Если StartDate пуста, дата читается из самой стартовой ячейки.
type ManualConfig struct {
	StartCell string // например, "C7"
	StartDate string // DD.MM.YYYY, DD/MM/YYYY или YYYY-MM-DD
}

// Mode реализует HeaderConfig
func (ManualConfig) Mode() domain.HeaderMode {
	return domain.HeaderModeManual
}

// AutoDetectConfig включает поиск заголовка по названиям месяцев и номерам дней
type AutoDetectConfig struct {
	Year  int       // год календаря, 0 - определить по таблице или по Today
	Today time.Time // текущая дата, используется когда год и месяц не найдены в таблице
}

// Mode реализует HeaderConfig
func (AutoDetectConfig) Mode() domain.HeaderMode {
	return domain.HeaderModeAutoDetect
}

// Resolution результат сопоставления колонок датам
type Resolution struct {
	Mode      domain.HeaderMode
	HeaderRow int                 // 0-based
	Columns   []domain.DateColumn // по возрастанию колонки
}

// DataStartRow первая строка с номерами (сразу после заголовка)
func (r *Resolution) DataStartRow() int {
	return r.HeaderRow + 1
}

// Resolve строит соответствие колонок датам выбранной стратегией
func Resolve(grid domain.Grid, cfg HeaderConfig) (*Resolution, error) {
	switch c := cfg.(type) {
	case ManualConfig:
		return resolveManual(grid, c)
	case *ManualConfig:
		return resolveManual(grid, *c)
	case AutoDetectConfig:
		return resolveAutoDetect(grid, c)
	case *AutoDetectConfig:
		return resolveAutoDetect(grid, *c)
	default:
		return resolveAutoDetect(grid, AutoDetectConfig{})
	}
}
