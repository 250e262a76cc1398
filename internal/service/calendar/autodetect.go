package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// resolveAutoDetect ищет строку заголовка с номерами дней и сопоставляет её колонки датам.
//
// Заголовком считается строка с самой длинной последовательностью номеров дней
// (каждый следующий на единицу больше предыдущего, либо 1 после 28-31);
// при равенстве выигрывает более ранняя строка.
// Месяц берётся из ближайшей строки выше (или самой строки заголовка), содержащей названия месяцев.
//
// Год: из ячейки месяца ("Ноябрь 2025"), иначе cfg.Year, иначе год cfg.Today.
// При переходе на меньший месяц (декабрь → январь) год увеличивается.
// Если названий месяцев нет, начальный месяц - месяц cfg.Today, и месяц сдвигается
// вперёд каждый раз, когда номер дня уменьшается.
func resolveAutoDetect(grid domain.Grid, cfg AutoDetectConfig) (*Resolution, error) {
	today := cfg.Today
	if today.IsZero() {
		today = time.Now()
	}

	rowsToScan := min(len(grid), domain.AutoDetectMaxRows)
	headerRow, bestRun := -1, 0
	for row := 0; row < rowsToScan; row++ {
		if run := longestDayRun(grid, row); run > bestRun {
			headerRow, bestRun = row, run
		}
	}

	if bestRun < domain.MinHeaderRun {
		return nil, fmt.Errorf("%w: no row among the first %d has at least %d consecutive day numbers",
			ErrHeaderNotFound, rowsToScan, domain.MinHeaderRun)
	}

	year := cfg.Year
	if year == 0 {
		year = today.Year()
	}

	ctx := monthContext{grid: grid, row: findMonthRow(grid, headerRow)}
	month := today.Month()
	lastDay := 0
	var last time.Time

	columns := collect(domain.FirstDateColumn, grid.Width(headerRow), domain.MaxDates, func(col int) (domain.DateColumn, bool) {
		cell := grid.Cell(headerRow, col)
		if isWeekdayToken(cell) {
			return domain.DateColumn{}, false
		}
		day, ok := parseDayNumber(cell)
		if !ok {
			return domain.DateColumn{}, false
		}

		if m, y, found := ctx.monthAt(col); found && m != ctx.current {
			// начался следующий месяц
			switch {
			case y > 0:
				year = y
			case ctx.current != 0 && m < month:
				year++
			}
			month = m
			ctx.current = m
		} else if lastDay > 0 && day < lastDay {
			month, year = nextMonth(month, year)
		}
		lastDay = day

		date := domain.NewDate(year, month, day)
		if date.Day() != day {
			// 30 февраля и т.п.
			return domain.DateColumn{}, false
		}
		if !last.IsZero() && !date.After(last) {
			return domain.DateColumn{}, false
		}
		last = date
		return domain.DateColumn{Column: col, Date: date}, true
	})

	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: row %d has no valid dates", ErrHeaderNotFound, headerRow+1)
	}

	return &Resolution{
		Mode:      domain.HeaderModeAutoDetect,
		HeaderRow: headerRow,
		Columns:   columns,
	}, nil
}

// longestDayRun длина самой длинной последовательности номеров дней в строке.
// Пустые ячейки и дни недели последовательность не прерывают.
func longestDayRun(grid domain.Grid, row int) int {
	best, run, prev := 0, 0, 0
	for col := domain.FirstDateColumn; col < grid.Width(row); col++ {
		cell := grid.Cell(row, col)
		if cell == "" || isWeekdayToken(cell) {
			continue
		}
		day, ok := parseDayNumber(cell)
		switch {
		case !ok:
			run, prev = 0, 0
			continue
		case run > 0 && (day == prev+1 || (day == 1 && prev >= 28)):
			run++
		default:
			run = 1
		}
		prev = day
		best = max(best, run)
	}
	return best
}

// findMonthRow ищет ближайшую к заголовку строку (включая его) с названием месяца, -1 если нет.
// Смотрим только колонки с датами, в A и B обычно заголовок листа и примечания.
func findMonthRow(grid domain.Grid, headerRow int) int {
	for row := headerRow; row >= 0; row-- {
		for col := domain.FirstDateColumn; col < grid.Width(row); col++ {
			if _, _, ok := parseMonthCell(grid.Cell(row, col)); ok {
				return row
			}
		}
	}
	return -1
}

type monthContext struct {
	grid    domain.Grid
	row     int
	current time.Month // последний встреченный месяц, 0 - ещё не было
}

// monthAt возвращает месяц, действующий для колонки: ближайшая слева (или в ней самой)
// ячейка строки месяцев с названием месяца
func (c *monthContext) monthAt(col int) (month time.Month, year int, ok bool) {
	if c.row < 0 {
		return 0, 0, false
	}
	for i := min(col, c.grid.Width(c.row)-1); i >= domain.FirstDateColumn; i-- {
		if m, y, found := parseMonthCell(c.grid.Cell(c.row, i)); found {
			return m, y, true
		}
	}
	return 0, 0, false
}

func nextMonth(month time.Month, year int) (time.Month, int) {
	if month == time.December {
		return time.January, year + 1
	}
	return month + 1, year
}
