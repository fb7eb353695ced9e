package delete_date_override

import "context"

type ScheduleService interface {
	DeleteDateOverride(ctx context.Context, coachID, overrideID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
