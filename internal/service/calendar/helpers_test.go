package calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func date(year, month, day int) time.Time {
	return domain.NewDate(year, time.Month(month), day)
}

// row дополняет строку пустыми ячейками слева до колонки start
func row(start int, cells ...string) []string {
	r := make([]string, start, start+len(cells))
	return append(r, cells...)
}

// hotelGrid таблица: заголовок в строке 7 (C7..E7), один номер A-103 с гостем на 26.11
func hotelGrid() domain.Grid {
	grid := make(domain.Grid, 6)
	grid = append(grid,
		[]string{"Категория", "№", "24.11.2025", "25.11.2025", "26.11.2025"},
		[]string{"Deluxe", "A-103", "", "", "GuestX"},
	)
	return grid
}
