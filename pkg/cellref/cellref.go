// Package cellref конвертирует адреса ячеек в стиле таблиц ("C7", "AA10")
// в координаты (row, col), начиная с нуля, и обратно.
//
// Допустимые координаты ограничены размерами листа excelize:
// колонки A..XFD (MaxColumns), строки 1..TotalRows.
package cellref

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference возвращается, когда адрес ячейки не соответствует формату <БУКВЫ><ЧИСЛО>
var ErrInvalidReference = errors.New("cellref: invalid cell reference")

// excelize принимает строчные буквы и "$", поэтому формат проверяем сами
var referencePattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// Decode разбирает адрес вида "C7" и возвращает 0-based индексы строки и колонки
func Decode(ref string) (row int, col int, err error) {
	if !referencePattern.MatchString(ref) {
		return 0, 0, fmt.Errorf("%w: %q: expected uppercase letters followed by a row number", ErrInvalidReference, ref)
	}

	col, row, err = excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrInvalidReference, ref, err)
	}
	if row > excelize.TotalRows {
		return 0, 0, fmt.Errorf("%w: %q: row exceeds %d", ErrInvalidReference, ref, excelize.TotalRows)
	}

	return row - 1, col - 1, nil
}

// Encode формирует адрес ячейки по 0-based индексам строки и колонки
func Encode(row, col int) (string, error) {
	if row < 0 || row >= excelize.TotalRows {
		return "", fmt.Errorf("%w: row %d is out of range [0, %d)", ErrInvalidReference, row, excelize.TotalRows)
	}

	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", fmt.Errorf("%w: column %d: %v", ErrInvalidReference, col, err)
	}

	return ref, nil
}
