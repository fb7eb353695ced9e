package recurringblock

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

// Repository репозиторий еженедельных блокировок (встречи, собрания и т.п.)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую еженедельную блокировку
func (r *Repository) Create(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_blocks").
		Columns(
			"coach_id",
			"title",
			"day_of_week",
			"start_time",
			"end_time",
		).
		Values(
			block.CoachID,
			block.Title,
			block.DayOfWeek,
			block.StartTime.String(),
			block.EndTime.String(),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// GetByCoach получает все еженедельные блокировки тренера
func (r *Repository) GetByCoach(ctx context.Context, coachID int64) ([]*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"coach_id",
		"title",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("recurring_blocks").
		Where(squirrel.Eq{"coach_id": coachID}).
		OrderBy("day_of_week ASC, start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.RecurringBlock, 0)

	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCoach - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку тренера по ID
// coachID в условии защищает от удаления чужой блокировки
func (r *Repository) Delete(ctx context.Context, coachID, blockID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("recurring_blocks").
		Where(squirrel.Eq{"id": blockID, "coach_id": coachID}).
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
		return ErrBlockNotFound
	}

	return nil
}

func scanBlock(rows *sql.Rows) (*domain.RecurringBlock, error) {
	var block domain.RecurringBlock
	var startTime, endTime string
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&block.ID,
		&block.CoachID,
		&block.Title,
		&block.DayOfWeek,
		&startTime,
		&endTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan block: %v", ErrScanRow, err)
	}

	if block.StartTime, err = types.NewTimeStringFromString(startTime); err != nil {
		return nil, fmt.Errorf("%w: block id=%d start_time: %v", ErrInvalidTimeValue, block.ID, err)
	}
	if block.EndTime, err = types.NewTimeStringFromString(endTime); err != nil {
		return nil, fmt.Errorf("%w: block id=%d end_time: %v", ErrInvalidTimeValue, block.ID, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return &block, nil
}
