package dateoverride

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/pkg/dbmetrics"
	"github.com/lengolf/LG-CoachingService/pkg/psqlbuilder"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// Repository репозиторий разовых исключений расписания на конкретные даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое исключение на дату
func (r *Repository) Create(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var startTime, endTime interface{}
	if override.StartTime != nil {
		startTime = override.StartTime.String()
	}
	if override.EndTime != nil {
		endTime = override.EndTime.String()
	}

	query, args, err := psqlbuilder.Insert("date_overrides").
		Columns(
			"coach_id",
			"override_date",
			"start_time",
			"end_time",
			"override_type",
			"title",
		).
		Values(
			override.CoachID,
			override.OverrideDate.Format(domain.DateFormat),
			startTime,
			endTime,
			string(override.OverrideType),
			override.Title,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// GetByCoachAndDateRange получает исключения тренера за период (включительно)
func (r *Repository) GetByCoachAndDateRange(ctx context.Context, coachID int64, dateRange domain.OverrideDateRange) ([]*domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"coach_id",
		"override_date",
		"start_time",
		"end_time",
		"override_type",
		"title",
		"created_at",
		"updated_at",
	).
		From("date_overrides").
		Where(squirrel.Eq{"coach_id": coachID}).
		Where(squirrel.GtOrEq{"override_date": dateRange.From.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"override_date": dateRange.To.Format(domain.DateFormat)}).
		OrderBy("override_date ASC, start_time ASC NULLS FIRST, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoachAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.DateOverride, 0)

	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCoachAndDateRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// DeleteOverlapping удаляет исключения тренера на дату, пересекающиеся с новым:
// для исключений с временным диапазоном - интервально пересекающиеся записи,
// для custom (без диапазона) - существующие custom записи на эту дату.
// Возвращает количество удаленных записей.
func (r *Repository) DeleteOverlapping(ctx context.Context, coachID int64, date time.Time, startTime, endTime *types.TimeString) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("date_overrides").
		Where(squirrel.Eq{
			"coach_id":      coachID,
			"override_date": date.Format(domain.DateFormat),
		})

	if startTime != nil && endTime != nil {
		// Полуинтервальное пересечение: [start, end) x [row.start, row.end)
		deleteBuilder = deleteBuilder.
			Where(squirrel.NotEq{"start_time": nil}).
			Where(squirrel.Lt{"start_time": endTime.String()}).
			Where(squirrel.Gt{"end_time": startTime.String()})
	} else {
		deleteBuilder = deleteBuilder.
			Where(squirrel.Eq{"override_type": string(domain.OverrideCustom)})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverlapping - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverlapping - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOverlapping - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Delete удаляет исключение тренера по ID
func (r *Repository) Delete(ctx context.Context, coachID, overrideID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_overrides").
		Where(squirrel.Eq{"id": overrideID, "coach_id": coachID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

func scanOverride(rows *sql.Rows) (*domain.DateOverride, error) {
	var override domain.DateOverride
	var overrideType string
	var startTime, endTime, title sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&override.ID,
		&override.CoachID,
		&override.OverrideDate,
		&startTime,
		&endTime,
		&overrideType,
		&title,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan override: %v", ErrScanRow, err)
	}

	override.OverrideType = domain.OverrideType(overrideType)

	if startTime.Valid {
		ts, err := types.NewTimeStringFromString(startTime.String)
		if err != nil {
			return nil, fmt.Errorf("%w: override id=%d start_time: %v", ErrInvalidTimeValue, override.ID, err)
		}
		override.StartTime = &ts
	}

	if endTime.Valid {
		ts, err := types.NewTimeStringFromString(endTime.String)
		if err != nil {
			return nil, fmt.Errorf("%w: override id=%d end_time: %v", ErrInvalidTimeValue, override.ID, err)
		}
		override.EndTime = &ts
	}

	if title.Valid {
		override.Title = &title.String
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}
