package upsert_weekly_schedule

import (
	"context"

	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertWeeklyScheduleRule(ctx context.Context, req *models.UpsertWeeklyScheduleRequest) (*models.WeeklyScheduleRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
