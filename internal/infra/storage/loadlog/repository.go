package loadlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const tableName = "calendar_loads"

// Repository журнал успешных загрузок календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала загрузок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о загрузке
func (r *Repository) Create(ctx context.Context, record *domain.LoadRecord) (*domain.LoadRecord, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"spreadsheet_id",
			"sheet_name",
			"mode",
			"dates_found",
			"rooms_found",
			"min_date",
			"max_date",
		).
		Values(
			record.SpreadsheetID,
			record.SheetName,
			string(record.Mode),
			record.DatesFound,
			record.RoomsFound,
			record.MinDate,
			record.MaxDate,
		).
		Suffix("RETURNING id, loaded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var loadedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&loadedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.LoadedAt = loadedAt.Time

	return record, nil
}

// ListRecent возвращает последние записи журнала, новые первыми
// Если spreadsheetID не пуст, возвращаются только загрузки этой таблицы
func (r *Repository) ListRecent(ctx context.Context, spreadsheetID string, limit uint64) ([]*domain.LoadRecord, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"spreadsheet_id",
		"sheet_name",
		"mode",
		"dates_found",
		"rooms_found",
		"min_date",
		"max_date",
		"loaded_at",
	).
		From(tableName).
		OrderBy("loaded_at DESC", "id DESC").
		Limit(limit)

	if spreadsheetID != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"spreadsheet_id": spreadsheetID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.LoadRecord, 0)
	for rows.Next() {
		var (
			record    domain.LoadRecord
			sheetName sql.NullString
			mode      string
		)

		if err := rows.Scan(
			&record.ID,
			&record.SpreadsheetID,
			&sheetName,
			&mode,
			&record.DatesFound,
			&record.RoomsFound,
			&record.MinDate,
			&record.MaxDate,
			&record.LoadedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan load record: %v", ErrScanRow, err)
		}

		if sheetName.Valid {
			record.SheetName = &sheetName.String
		}
		record.Mode = domain.HeaderMode(mode)
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}
