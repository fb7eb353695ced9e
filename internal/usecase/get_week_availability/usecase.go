package get_week_availability

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	staffClient "github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
)

// UseCase use case для получения недельной сетки доступности тренера
type UseCase struct {
	scheduleRepo WeeklyScheduleRepository
	blockRepo    RecurringBlockRepository
	overrideRepo DateOverrideRepository
	staffClient  StaffServiceClient
	resolver     *Resolver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo WeeklyScheduleRepository,
	blockRepo RecurringBlockRepository,
	overrideRepo DateOverrideRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		blockRepo:    blockRepo,
		overrideRepo: overrideRepo,
		staffClient:  staffClient,
		resolver:     NewResolver(logger),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения недельной сетки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekAvailability: coach=%d, startDate=%s",
		req.CoachID, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату к понедельнику недели и строим окно из 7 дат
	weekStart := domain.WeekStart(req.StartDate)
	weekDates := domain.WeekDates(weekStart)
	weekEnd := weekDates[len(weekDates)-1]

	// 3. Проверяем существование тренера
	coach, err := uc.staffClient.GetCoach(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, staffClient.ErrCoachNotFound) {
			uc.logger.Warn("GetWeekAvailability: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("GetWeekAvailability: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	// 4. Загружаем три независимых набора правил параллельно
	// Резолверу не важен порядок получения - важно лишь наличие всех трех
	var (
		schedules []*domain.WeeklyScheduleRule
		blocks    []*domain.RecurringBlock
		overrides []*domain.DateOverride
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		schedules, err = uc.scheduleRepo.GetByCoach(gCtx, req.CoachID)
		if err != nil {
			return fmt.Errorf("weekly schedules: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		blocks, err = uc.blockRepo.GetByCoach(gCtx, req.CoachID)
		if err != nil {
			return fmt.Errorf("recurring blocks: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		overrides, err = uc.overrideRepo.GetByCoachAndDateRange(gCtx, req.CoachID, domain.OverrideDateRange{
			From: weekStart,
			To:   weekEnd,
		})
		if err != nil {
			return fmt.Errorf("date overrides: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetWeekAvailability: failed to load schedule data for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to load schedule data: %v", ErrInternal, err)
	}

	// 5. Вычисляем сетку доступности
	days, err := uc.resolver.ResolveWeek(weekDates, uc.timeProvider.Now(), schedules, blocks, overrides)
	if err != nil {
		uc.logger.Error("GetWeekAvailability: resolver failed for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: resolver: %v", ErrInternal, err)
	}

	uc.logger.Info("GetWeekAvailability: resolved week %s..%s for coach=%d (%d rules, %d blocks, %d overrides)",
		weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat),
		req.CoachID, len(schedules), len(blocks), len(overrides))

	return &Response{
		CoachID:   req.CoachID,
		CoachName: coach.DisplayName,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      days,
	}, nil
}
