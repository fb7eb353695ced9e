package delete_weekly_schedule

import "context"

type ScheduleService interface {
	DeleteWeeklyScheduleRule(ctx context.Context, coachID int64, dayOfWeek int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
