package create_date_override

import (
	"context"

	createDateOverride "github.com/lengolf/LG-CoachingService/internal/usecase/create_date_override"
)

type CreateDateOverrideUseCase interface {
	Execute(ctx context.Context, req *createDateOverride.Request) (*createDateOverride.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
