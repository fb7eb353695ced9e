package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	dateoverrideRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/dateoverride"
	recurringblockRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/recurringblock"
	weeklyscheduleRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/weeklyschedule"
	staffClient "github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

// Service сервис управления расписанием тренеров для staff-панели
type Service struct {
	scheduleRepo WeeklyScheduleRepository
	blockRepo    RecurringBlockRepository
	overrideRepo DateOverrideRepository
	staffClient  StaffServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo WeeklyScheduleRepository,
	blockRepo RecurringBlockRepository,
	overrideRepo DateOverrideRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blockRepo:    blockRepo,
		overrideRepo: overrideRepo,
		staffClient:  staffClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// UpsertWeeklyScheduleRule создает или обновляет правило недельного расписания
// На пару (тренер, день недели) существует не больше одного правила
func (s *Service) UpsertWeeklyScheduleRule(ctx context.Context, req *models.UpsertWeeklyScheduleRequest) (*models.WeeklyScheduleRuleResponse, error) {
	s.logger.Info("UpsertWeeklyScheduleRule: coach=%d, dayOfWeek=%d, %s-%s, available=%t",
		req.CoachID, req.DayOfWeek, req.StartTime, req.EndTime, req.IsAvailable)

	if err := validateCoachID(req.CoachID); err != nil {
		return nil, err
	}
	if err := validateDayOfWeek(req.DayOfWeek); err != nil {
		return nil, err
	}

	startTime, endTime, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("UpsertWeeklyScheduleRule: invalid time range for coach=%d: %v", req.CoachID, err)
		return nil, err
	}

	if err := s.checkCoachExists(ctx, req.CoachID); err != nil {
		return nil, err
	}

	rule, err := s.scheduleRepo.Upsert(ctx, &domain.WeeklyScheduleRule{
		CoachID:     req.CoachID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		s.logger.Error("UpsertWeeklyScheduleRule: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: UpsertWeeklyScheduleRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertWeeklyScheduleRule: saved rule id=%d for coach=%d", rule.ID, rule.CoachID)
	return models.FromDomainWeeklyScheduleRule(rule), nil
}

// DeleteWeeklyScheduleRule удаляет правило расписания тренера на день недели
func (s *Service) DeleteWeeklyScheduleRule(ctx context.Context, coachID int64, dayOfWeek int) error {
	s.logger.Info("DeleteWeeklyScheduleRule: coach=%d, dayOfWeek=%d", coachID, dayOfWeek)

	if err := validateCoachID(coachID); err != nil {
		return err
	}
	if err := validateDayOfWeek(dayOfWeek); err != nil {
		return err
	}

	if err := s.scheduleRepo.DeleteByCoachAndDay(ctx, coachID, dayOfWeek); err != nil {
		if errors.Is(err, weeklyscheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteWeeklyScheduleRule: rule not found for coach=%d, dayOfWeek=%d", coachID, dayOfWeek)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteWeeklyScheduleRule: repository error for coach=%d: %v", coachID, err)
		return fmt.Errorf("%w: DeleteWeeklyScheduleRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteWeeklyScheduleRule: deleted rule for coach=%d, dayOfWeek=%d", coachID, dayOfWeek)
	return nil
}

// CreateRecurringBlock создает еженедельную блокировку времени
func (s *Service) CreateRecurringBlock(ctx context.Context, req *models.CreateRecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	s.logger.Info("CreateRecurringBlock: coach=%d, dayOfWeek=%d, %s-%s",
		req.CoachID, req.DayOfWeek, req.StartTime, req.EndTime)

	if err := validateCoachID(req.CoachID); err != nil {
		return nil, err
	}
	if err := validateDayOfWeek(req.DayOfWeek); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	startTime, endTime, err := validateTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		s.logger.Warn("CreateRecurringBlock: invalid time range for coach=%d: %v", req.CoachID, err)
		return nil, err
	}

	if err := s.checkCoachExists(ctx, req.CoachID); err != nil {
		return nil, err
	}

	block, err := s.blockRepo.Create(ctx, &domain.RecurringBlock{
		CoachID:   req.CoachID,
		Title:     title,
		DayOfWeek: req.DayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		s.logger.Error("CreateRecurringBlock: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: CreateRecurringBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRecurringBlock: created block id=%d for coach=%d", block.ID, block.CoachID)
	return models.FromDomainRecurringBlock(block), nil
}

// DeleteRecurringBlock удаляет еженедельную блокировку тренера
func (s *Service) DeleteRecurringBlock(ctx context.Context, coachID, blockID int64) error {
	s.logger.Info("DeleteRecurringBlock: coach=%d, block=%d", coachID, blockID)

	if err := validateCoachID(coachID); err != nil {
		return err
	}
	if blockID <= 0 {
		return fmt.Errorf("%w: blockID must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, coachID, blockID); err != nil {
		if errors.Is(err, recurringblockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteRecurringBlock: block id=%d not found for coach=%d", blockID, coachID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteRecurringBlock: repository error for coach=%d: %v", coachID, err)
		return fmt.Errorf("%w: DeleteRecurringBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRecurringBlock: deleted block id=%d for coach=%d", blockID, coachID)
	return nil
}

// DeleteDateOverride удаляет исключение на дату
func (s *Service) DeleteDateOverride(ctx context.Context, coachID, overrideID int64) error {
	s.logger.Info("DeleteDateOverride: coach=%d, override=%d", coachID, overrideID)

	if err := validateCoachID(coachID); err != nil {
		return err
	}
	if overrideID <= 0 {
		return fmt.Errorf("%w: overrideID must be positive", ErrInvalidInput)
	}

	if err := s.overrideRepo.Delete(ctx, coachID, overrideID); err != nil {
		if errors.Is(err, dateoverrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteDateOverride: override id=%d not found for coach=%d", overrideID, coachID)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteDateOverride: repository error for coach=%d: %v", coachID, err)
		return fmt.Errorf("%w: DeleteDateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDateOverride: deleted override id=%d for coach=%d", overrideID, coachID)
	return nil
}

// GetCoachSchedule получает полное расписание тренера: правила, блокировки
// и исключения. Если период не указан, исключения отдаются от сегодняшней
// даты на DefaultScheduleRangeDays вперед
func (s *Service) GetCoachSchedule(ctx context.Context, req *models.GetCoachScheduleRequest) (*models.CoachScheduleResponse, error) {
	s.logger.Info("GetCoachSchedule: coach=%d", req.CoachID)

	if err := validateCoachID(req.CoachID); err != nil {
		return nil, err
	}

	coach, err := s.staffClient.GetCoach(ctx, req.CoachID)
	if err != nil {
		if errors.Is(err, staffClient.ErrCoachNotFound) {
			s.logger.Warn("GetCoachSchedule: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		s.logger.Error("GetCoachSchedule: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSchedule - failed to get coach: %v", ErrInternal, err)
	}

	dateRange, err := s.overrideRange(req)
	if err != nil {
		return nil, err
	}

	rules, err := s.scheduleRepo.GetByCoach(ctx, req.CoachID)
	if err != nil {
		s.logger.Error("GetCoachSchedule: failed to get weekly schedules for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSchedule - failed to get weekly schedules: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByCoach(ctx, req.CoachID)
	if err != nil {
		s.logger.Error("GetCoachSchedule: failed to get recurring blocks for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSchedule - failed to get recurring blocks: %v", ErrInternal, err)
	}

	overrides, err := s.overrideRepo.GetByCoachAndDateRange(ctx, req.CoachID, dateRange)
	if err != nil {
		s.logger.Error("GetCoachSchedule: failed to get date overrides for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachSchedule - failed to get date overrides: %v", ErrInternal, err)
	}

	s.logger.Info("GetCoachSchedule: coach=%d has %d rules, %d blocks, %d overrides",
		req.CoachID, len(rules), len(blocks), len(overrides))

	return &models.CoachScheduleResponse{
		CoachID:         coach.ID,
		CoachName:       coach.DisplayName,
		WeeklySchedules: models.FromDomainWeeklyScheduleRules(rules),
		RecurringBlocks: models.FromDomainRecurringBlocks(blocks),
		DateOverrides:   models.FromDomainDateOverrides(overrides),
	}, nil
}

// overrideRange вычисляет период выборки исключений с учетом значений по умолчанию
func (s *Service) overrideRange(req *models.GetCoachScheduleRequest) (domain.OverrideDateRange, error) {
	if req.FromDate != nil && req.ToDate != nil {
		if req.ToDate.Before(*req.FromDate) {
			return domain.OverrideDateRange{}, fmt.Errorf("%w: toDate is before fromDate", ErrInvalidInput)
		}
		return domain.OverrideDateRange{From: *req.FromDate, To: *req.ToDate}, nil
	}

	if req.FromDate != nil || req.ToDate != nil {
		return domain.OverrideDateRange{}, fmt.Errorf("%w: fromDate and toDate must be provided together", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	return domain.OverrideDateRange{
		From: now,
		To:   now.AddDate(0, 0, domain.DefaultScheduleRangeDays),
	}, nil
}

// checkCoachExists проверяет, что тренер существует и активен
func (s *Service) checkCoachExists(ctx context.Context, coachID int64) error {
	if _, err := s.staffClient.GetCoach(ctx, coachID); err != nil {
		if errors.Is(err, staffClient.ErrCoachNotFound) {
			s.logger.Warn("checkCoachExists: coach id=%d not found", coachID)
			return ErrCoachNotFound
		}
		s.logger.Error("checkCoachExists: failed to get coach id=%d: %v", coachID, err)
		return fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}
	return nil
}

func validateCoachID(coachID int64) error {
	if coachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	return nil
}

func validateDayOfWeek(dayOfWeek int) error {
	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}
	return nil
}

func validateTimeRange(start, end string) (types.TimeString, types.TimeString, error) {
	startTime, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	endTime, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	if !startTime.IsBefore(endTime) {
		return "", "", fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidTimeRange, startTime, endTime)
	}

	return startTime, endTime, nil
}
