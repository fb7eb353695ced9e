package get_week_availability

import (
	"context"
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
)

// WeeklyScheduleRepository интерфейс репозитория правил еженедельного расписания
type WeeklyScheduleRepository interface {
	GetByCoach(ctx context.Context, coachID int64) ([]*domain.WeeklyScheduleRule, error)
}

// RecurringBlockRepository интерфейс репозитория еженедельных блокировок
type RecurringBlockRepository interface {
	GetByCoach(ctx context.Context, coachID int64) ([]*domain.RecurringBlock, error)
}

// DateOverrideRepository интерфейс репозитория исключений на даты
type DateOverrideRepository interface {
	GetByCoachAndDateRange(ctx context.Context, coachID int64, dateRange domain.OverrideDateRange) ([]*domain.DateOverride, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*staffservice.Coach, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
