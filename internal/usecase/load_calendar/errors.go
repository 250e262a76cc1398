package load_calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_calendar: invalid input data")

	// ErrMissingSpreadsheetID возвращается, когда ID таблицы не задан ни в запросе, ни в конфигурации
	ErrMissingSpreadsheetID = fmt.Errorf("%w: spreadsheetId is required", ErrInvalidInput)

	// ErrDateStartWithoutCell возвращается, когда дата начала задана без стартовой ячейки
	ErrDateStartWithoutCell = fmt.Errorf("%w: dateStart requires dateStartCell", ErrInvalidInput)
)
