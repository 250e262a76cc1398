package cellref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		ref string
		row int
		col int
	}{
		{"A1", 0, 0},
		{"C7", 6, 2},
		{"Z1", 0, 25},
		{"AA10", 9, 26},
		{"AZ3", 2, 51},
		{"ZZ100", 99, 701},
		{"XFD1048576", excelize.TotalRows - 1, excelize.MaxColumns - 1},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			row, col, err := Decode(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, ref := range []string{"", "7", "C", "c7", "C0", "C-1", "C7!", "$C$7", "7C", "C 7", "XFE1", "A1048577", "AJRNIO1", "A99999999999999999999"} {
		t.Run(ref, func(t *testing.T) {
			_, _, err := Decode(ref)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		row  int
		col  int
		want string
	}{
		{0, 0, "A1"},
		{6, 2, "C7"},
		{9, 26, "AA10"},
		{0, 701, "ZZ1"},
		{0, 702, "AAA1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ref, err := Encode(tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)
		})
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		row  int
		col  int
	}{
		{"negative row", -1, 0},
		{"negative column", 0, -1},
		{"column past XFD", 0, excelize.MaxColumns},
		{"huge column", 0, 1 << 40},
		{"row past sheet", excelize.TotalRows, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.row, tt.col)
			assert.ErrorIs(t, err, ErrInvalidReference)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	check := func(row, col int) {
		ref, err := Encode(row, col)
		require.NoError(t, err)
		r, c, err := Decode(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, row, r)
		assert.Equal(t, col, c)
	}

	for row := 0; row < 50; row += 7 {
		for col := 0; col < 2000; col += 13 {
			check(row, col)
		}
	}

	// границы листа
	check(0, excelize.MaxColumns-1)
	check(excelize.TotalRows-1, 0)
	check(excelize.TotalRows-1, excelize.MaxColumns-1)
}
