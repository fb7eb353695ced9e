package get_coach_schedule

import (
	"context"

	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetCoachSchedule(ctx context.Context, req *models.GetCoachScheduleRequest) (*models.CoachScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
