package calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BuildRooms строит записи номеров по строкам таблицы начиная с dataStartRow.
// Строки без номера комнаты (легенда, пустые строки) пропускаются.
// Ячейка считается занятой, если после обрезки пробелов в ней есть любой текст.
func BuildRooms(grid domain.Grid, dataStartRow int, columns []domain.DateColumn) []domain.RoomRecord {
	return collect(dataStartRow, len(grid), 0, func(row int) (domain.RoomRecord, bool) {
		roomID := grid.Cell(row, domain.RoomColumn)
		if roomID == "" {
			return domain.RoomRecord{}, false
		}

		occupancy := make(map[time.Time]bool, len(columns))
		for _, dc := range columns {
			occupancy[dc.Date] = isOccupied(grid.Cell(row, dc.Column))
		}

		return domain.RoomRecord{
			Row:       row,
			Category:  grid.Cell(row, domain.CategoryColumn),
			RoomID:    roomID,
			Occupancy: occupancy,
		}, true
	})
}

// isOccupied любая непустая ячейка - занято (гость, пометка, бронь)
func isOccupied(cell string) bool {
	return cell != ""
}
