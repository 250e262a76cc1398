package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestResolveManual_StartDateFromConfig(t *testing.T) {
	res, err := Resolve(hotelGrid(), ManualConfig{StartCell: "C7", StartDate: "24.11.2025"})
	require.NoError(t, err)

	assert.Equal(t, domain.HeaderModeManual, res.Mode)
	assert.Equal(t, 6, res.HeaderRow)
	assert.Equal(t, 7, res.DataStartRow())
	assert.Equal(t, []domain.DateColumn{
		{Column: 2, Date: date(2025, 11, 24)},
		{Column: 3, Date: date(2025, 11, 25)},
		{Column: 4, Date: date(2025, 11, 26)},
	}, res.Columns)
}

func TestResolveManual_StartDateFormats(t *testing.T) {
	for _, s := range []string{"24.11.2025", "24/11/2025", "2025-11-24"} {
		t.Run(s, func(t *testing.T) {
			res, err := Resolve(hotelGrid(), ManualConfig{StartCell: "C7", StartDate: s})
			require.NoError(t, err)
			assert.Equal(t, date(2025, 11, 24), res.Columns[0].Date)
		})
	}
}

func TestResolveManual_StartDateFromCell(t *testing.T) {
	res, err := Resolve(hotelGrid(), ManualConfig{StartCell: "C7"})
	require.NoError(t, err)
	require.Len(t, res.Columns, 3)
	assert.Equal(t, date(2025, 11, 24), res.Columns[0].Date)
}

func TestResolveManual_SkipsWeekdayColumns(t *testing.T) {
	grid := domain.Grid{
		row(2, "1", "пн", "2", "Вт", "3", "wed", "4", "THU"),
	}

	res, err := Resolve(grid, ManualConfig{StartCell: "C1", StartDate: "2025-12-01"})
	require.NoError(t, err)

	assert.Equal(t, []domain.DateColumn{
		{Column: 2, Date: date(2025, 12, 1)},
		{Column: 4, Date: date(2025, 12, 2)},
		{Column: 6, Date: date(2025, 12, 3)},
		{Column: 8, Date: date(2025, 12, 4)},
	}, res.Columns)
}

func TestResolveManual_Monotonic(t *testing.T) {
	cells := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		if i%3 == 0 {
			cells = append(cells, "сб")
			continue
		}
		cells = append(cells, "x")
	}
	grid := domain.Grid{row(2, cells...)}

	res, err := Resolve(grid, ManualConfig{StartCell: "C1", StartDate: "30.12.2025"})
	require.NoError(t, err)

	for i := 1; i < len(res.Columns); i++ {
		prev, cur := res.Columns[i-1], res.Columns[i]
		assert.Greater(t, cur.Column, prev.Column)
		assert.Equal(t, prev.Date.AddDate(0, 0, 1), cur.Date)
		assert.NotEqual(t, "сб", grid.Cell(0, cur.Column))
	}
}

func TestResolveManual_Cap(t *testing.T) {
	grid := domain.Grid{row(2, strings.Split(strings.Repeat("x,", 1000), ",")...)}

	res, err := Resolve(grid, ManualConfig{StartCell: "C1", StartDate: "01.01.2025"})
	require.NoError(t, err)

	assert.Len(t, res.Columns, domain.MaxDates)
	assert.Equal(t, date(2025, 1, 1).AddDate(0, 0, domain.MaxDates-1), res.Columns[len(res.Columns)-1].Date)
}

func TestResolveManual_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  ManualConfig
		err  error
	}{
		{"invalid reference", ManualConfig{StartCell: "7C", StartDate: "24.11.2025"}, ErrInvalidReference},
		{"lowercase reference", ManualConfig{StartCell: "c7", StartDate: "24.11.2025"}, ErrInvalidReference},
		{"unparseable start date", ManualConfig{StartCell: "C7", StartDate: "завтра"}, ErrStartDateUnresolved},
		{"cell is not a date", ManualConfig{StartCell: "A7"}, ErrStartDateUnresolved},
		{"row out of bounds", ManualConfig{StartCell: "C100", StartDate: "24.11.2025"}, ErrHeaderNotFound},
		{"column out of bounds", ManualConfig{StartCell: "Z7", StartDate: "24.11.2025"}, ErrHeaderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(hotelGrid(), tt.cfg)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
