package delete_recurring_block

import "context"

type ScheduleService interface {
	DeleteRecurringBlock(ctx context.Context, coachID, blockID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
