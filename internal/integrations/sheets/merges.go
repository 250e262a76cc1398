package sheets

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"google.golang.org/api/sheets/v4"
)

// applyMerges копирует значение левой верхней ячейки каждого объединённого диапазона
// во все ячейки диапазона. API возвращает значение только для первой ячейки,
// а бронь, растянутая на несколько дат, должна занимать каждую из них.
func applyMerges(grid domain.Grid, merges []MergeRange) domain.Grid {
	for _, m := range merges {
		if m.StartRow < 0 || m.StartRow >= len(grid) || m.StartCol < 0 {
			continue
		}
		value := ""
		if m.StartCol < len(grid[m.StartRow]) {
			value = grid[m.StartRow][m.StartCol]
		}
		if value == "" {
			continue
		}

		for row := m.StartRow; row < m.EndRow && row < len(grid); row++ {
			if len(grid[row]) < m.EndCol {
				grid[row] = append(grid[row], make([]string, m.EndCol-len(grid[row]))...)
			}
			for col := m.StartCol; col < m.EndCol; col++ {
				grid[row][col] = value
			}
		}
	}
	return grid
}

// toGrid конвертирует значения из ответа API в строки
func toGrid(values [][]interface{}) domain.Grid {
	grid := make(domain.Grid, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				cells[j] = s
				continue
			}
			cells[j] = fmt.Sprint(v)
		}
		grid[i] = cells
	}
	return grid
}

func toMergeRanges(ranges []*sheets.GridRange) []MergeRange {
	merges := make([]MergeRange, 0, len(ranges))
	for _, r := range ranges {
		if r == nil {
			continue
		}
		merges = append(merges, MergeRange{
			StartRow: int(r.StartRowIndex),
			EndRow:   int(r.EndRowIndex),
			StartCol: int(r.StartColumnIndex),
			EndCol:   int(r.EndColumnIndex),
		})
	}
	return merges
}
