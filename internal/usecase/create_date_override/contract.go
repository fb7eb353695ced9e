package create_date_override

import (
	"context"
	"time"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// DateOverrideRepository интерфейс репозитория исключений на даты
type DateOverrideRepository interface {
	Create(ctx context.Context, override *domain.DateOverride) (*domain.DateOverride, error)
	DeleteOverlapping(ctx context.Context, coachID int64, date time.Time, startTime, endTime *types.TimeString) (int64, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetCoach(ctx context.Context, coachID int64) (*staffservice.Coach, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
