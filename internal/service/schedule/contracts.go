package schedule

import (
	"context"
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
)

// WeeklyScheduleRepository интерфейс репозитория правил недельного расписания
type WeeklyScheduleRepository interface {
	Upsert(ctx context.Context, rule *domain.WeeklyScheduleRule) (*domain.WeeklyScheduleRule, error)
	GetByCoach(ctx context.Context, coachID int64) ([]*domain.WeeklyScheduleRule, error)
	DeleteByCoachAndDay(ctx context.Context, coachID int64, dayOfWeek int) error
}

// RecurringBlockRepository интерфейс репозитория еженедельных блокировок
type RecurringBlockRepository interface {
	Create(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error)
	GetByCoach(ctx context.Context, coachID int64) ([]*domain.RecurringBlock, error)
	Delete(ctx context.Context, coachID, blockID int64) error
}

// DateOverrideRepository интерфейс репозитория исключений на даты
type DateOverrideRepository interface {
	GetByCoachAndDateRange(ctx context.Context, coachID int64, dateRange domain.OverrideDateRange) ([]*domain.DateOverride, error)
	Delete(ctx context.Context, coachID, overrideID int64) error
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*staffservice.Coach, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
