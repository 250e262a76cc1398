package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/cellref"
)

// resolveManual идёт вправо от стартовой ячейки и присваивает каждой принятой колонке
// следующую по порядку дату. Колонки с сокращениями дней недели пропускаются
// и дату не сдвигают.
func resolveManual(grid domain.Grid, cfg ManualConfig) (*Resolution, error) {
	headerRow, startCol, err := cellref.Decode(cfg.StartCell)
	if err != nil {
		return nil, err
	}

	if headerRow >= len(grid) {
		return nil, fmt.Errorf("%w: start cell %s: row %d is out of bounds (sheet has %d rows)",
			ErrHeaderNotFound, cfg.StartCell, headerRow+1, len(grid))
	}

	startDate, err := resolveStartDate(grid, cfg, headerRow, startCol)
	if err != nil {
		return nil, err
	}

	current := startDate
	columns := collect(startCol, grid.Width(headerRow), domain.MaxDates, func(col int) (domain.DateColumn, bool) {
		if isWeekdayToken(grid.Cell(headerRow, col)) {
			return domain.DateColumn{}, false
		}
		accepted := domain.DateColumn{Column: col, Date: current}
		current = current.AddDate(0, 0, 1)
		return accepted, true
	})

	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no date columns to the right of %s", ErrHeaderNotFound, cfg.StartCell)
	}

	return &Resolution{
		Mode:      domain.HeaderModeManual,
		HeaderRow: headerRow,
		Columns:   columns,
	}, nil
}

// resolveStartDate берёт дату из конфигурации, а если она не задана - из стартовой ячейки
func resolveStartDate(grid domain.Grid, cfg ManualConfig, row, col int) (time.Time, error) {
	if cfg.StartDate != "" {
		date, ok := domain.ParseStartDate(cfg.StartDate)
		if !ok {
			return time.Time{}, fmt.Errorf("%w: cannot parse start date %q (expected DD.MM.YYYY, DD/MM/YYYY or YYYY-MM-DD)",
				ErrStartDateUnresolved, cfg.StartDate)
		}
		return date, nil
	}

	cell := grid.Cell(row, col)
	date, ok := domain.ParseStartDate(cell)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: cell %s contains %q, which is not a date; set the start date explicitly",
			ErrStartDateUnresolved, cfg.StartCell, cell)
	}
	return date, nil
}
