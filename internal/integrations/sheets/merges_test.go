package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestApplyMerges(t *testing.T) {
	grid := domain.Grid{
		{"", "", "Ноябрь 2025"},
		{"Deluxe", "A-101", "Иванов"},
		{"Deluxe", "A-102"},
	}

	got := applyMerges(grid, []MergeRange{
		{StartRow: 0, EndRow: 1, StartCol: 2, EndCol: 5},
		{StartRow: 1, EndRow: 3, StartCol: 2, EndCol: 4},
		{StartRow: 2, EndRow: 3, StartCol: 0, EndCol: 0},
	})

	assert.Equal(t, domain.Grid{
		{"", "", "Ноябрь 2025", "Ноябрь 2025", "Ноябрь 2025"},
		{"Deluxe", "A-101", "Иванов", "Иванов"},
		{"Deluxe", "A-102", "Иванов", "Иванов"},
	}, got)
}

func TestApplyMerges_IgnoresEmptyAndOutOfRange(t *testing.T) {
	grid := domain.Grid{{"a", ""}}

	got := applyMerges(grid, []MergeRange{
		{StartRow: 0, EndRow: 1, StartCol: 1, EndCol: 3},
		{StartRow: 5, EndRow: 6, StartCol: 0, EndCol: 2},
	})

	assert.Equal(t, domain.Grid{{"a", ""}}, got)
}

func TestToGrid(t *testing.T) {
	got := toGrid([][]interface{}{
		{"Deluxe", "A-101", nil, 12.5, true},
		{},
	})

	assert.Equal(t, domain.Grid{
		{"Deluxe", "A-101", "", "12.5", "true"},
		{},
	}, got)
}
