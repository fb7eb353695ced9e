package create_date_override

import (
	"fmt"
	"strings"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// normalizedRequest результат валидации: типизированное исключение без ID
type normalizedRequest struct {
	overrideType domain.OverrideType
	startTime    *types.TimeString
	endTime      *types.TimeString
	title        *string
}

// validateRequest валидирует запрос и нормализует время к HH:MM
func validateRequest(req *Request) (*normalizedRequest, error) {
	if req.CoachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.OverrideDate.IsZero() {
		return nil, fmt.Errorf("%w: overrideDate is required", ErrInvalidInput)
	}

	overrideType := domain.OverrideType(req.OverrideType)
	if !overrideType.IsValid() {
		return nil, fmt.Errorf("%w: unknown override type %q", ErrInvalidInput, req.OverrideType)
	}

	if req.Title != nil && len(*req.Title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	// Custom - пометка на весь день: без временного диапазона, но с подписью
	if overrideType == domain.OverrideCustom {
		if req.StartTime != nil || req.EndTime != nil {
			return nil, fmt.Errorf("%w: custom override must not carry a time range", ErrInvalidInput)
		}
		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: custom override requires a title", ErrInvalidInput)
		}

		return &normalizedRequest{
			overrideType: overrideType,
			title:        req.Title,
		}, nil
	}

	// available/unavailable обязаны нести диапазон
	if req.StartTime == nil || req.EndTime == nil {
		return nil, fmt.Errorf("%w: override type %q requires startTime and endTime", ErrInvalidInput, req.OverrideType)
	}

	startTime, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(*req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, startTime, endTime)
	}

	return &normalizedRequest{
		overrideType: overrideType,
		startTime:    &startTime,
		endTime:      &endTime,
		title:        req.Title,
	}, nil
}
