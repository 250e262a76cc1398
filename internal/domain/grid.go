package domain

import "strings"

// Grid таблица значений ячеек (строки × колонки), пустая ячейка - пустая строка.
// Строки могут иметь разную длину: недостающие ячейки считаются пустыми.
type Grid [][]string

// Cell возвращает обрезанное по пробелам значение ячейки или пустую строку, если ячейки нет
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return ""
	}
	return strings.TrimSpace(g[row][col])
}

// Width возвращает количество ячеек в строке
func (g Grid) Width(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}
