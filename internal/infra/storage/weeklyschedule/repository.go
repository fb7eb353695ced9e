package weeklyschedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/pkg/dbmetrics"
	"github.com/lengolf/LG-CoachingService/pkg/psqlbuilder"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// Repository репозиторий правил еженедельного расписания тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет правило расписания для (coach_id, day_of_week)
// На паре (coach_id, day_of_week) стоит уникальный индекс - правило на день недели одно
func (r *Repository) Upsert(ctx context.Context, rule *domain.WeeklyScheduleRule) (*domain.WeeklyScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_schedules").
		Columns(
			"coach_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_available",
		).
		Values(
			rule.CoachID,
			rule.DayOfWeek,
			rule.StartTime.String(),
			rule.EndTime.String(),
			rule.IsAvailable,
		).
		Suffix(`ON CONFLICT (coach_id, day_of_week) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByCoach получает все правила расписания тренера, отсортированные по дню недели
func (r *Repository) GetByCoach(ctx context.Context, coachID int64) ([]*domain.WeeklyScheduleRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"coach_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
		"created_at",
		"updated_at",
	).
		From("weekly_schedules").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("day_of_week ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WeeklyScheduleRule, 0)

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// DeleteByCoachAndDay удаляет правило расписания тренера на день недели
func (r *Repository) DeleteByCoachAndDay(ctx context.Context, coachID int64, dayOfWeek int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("weekly_schedules").
		Where(squirrel.Eq{"coach_id": coachID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByCoachAndDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByCoachAndDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCoachAndDay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// scanRule сканирует строку результата в domain модель
// Время приходит из PostgreSQL как HH:MM:SS и нормализуется до HH:MM
func scanRule(rows *sql.Rows) (*domain.WeeklyScheduleRule, error) {
	var rule domain.WeeklyScheduleRule
	var startTime, endTime string
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&rule.ID,
		&rule.CoachID,
		&rule.DayOfWeek,
		&startTime,
		&endTime,
		&rule.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan rule: %v", ErrScanRow, err)
	}

	if rule.StartTime, err = types.NewTimeStringFromString(startTime); err != nil {
		return nil, fmt.Errorf("%w: rule id=%d start_time: %v", ErrInvalidTimeValue, rule.ID, err)
	}
	if rule.EndTime, err = types.NewTimeStringFromString(endTime); err != nil {
		return nil, fmt.Errorf("%w: rule id=%d end_time: %v", ErrInvalidTimeValue, rule.ID, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
