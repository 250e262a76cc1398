package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "mode").
		From("calendar_loads").
		Where(squirrel.Eq{"spreadsheet_id": "abc"}).
		Where(squirrel.GtOrEq{"dates_found": 10}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, mode FROM calendar_loads WHERE spreadsheet_id = $1 AND dates_found >= $2", query)
	assert.Equal(t, []interface{}{"abc", 10}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Insert("calendar_loads").
		Columns("spreadsheet_id", "mode").
		Values("abc", "manual").
		Suffix("RETURNING id").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO calendar_loads (spreadsheet_id,mode) VALUES ($1,$2) RETURNING id", query)
	assert.Equal(t, []interface{}{"abc", "manual"}, args)
}
