package create_date_override

import (
	"context"
	"errors"
	"fmt"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	staffClient "github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
)

// UseCase use case для создания исключения на дату
type UseCase struct {
	overrideRepo DateOverrideRepository
	staffClient  StaffServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	overrideRepo DateOverrideRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		overrideRepo: overrideRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания исключения на дату
// Пересекающиеся исключения вытесняются в той же сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDateOverride: coach=%d, date=%s, type=%s",
		req.CoachID, req.OverrideDate.Format(domain.DateFormat), req.OverrideType)

	// 1. Валидация входных данных
	normalized, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateDateOverride: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование тренера
	if _, err := uc.staffClient.GetCoach(ctx, req.CoachID); err != nil {
		if errors.Is(err, staffClient.ErrCoachNotFound) {
			uc.logger.Warn("CreateDateOverride: coach id=%d not found", req.CoachID)
			return nil, ErrCoachNotFound
		}
		uc.logger.Error("CreateDateOverride: failed to get coach id=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
	}

	var (
		result   *domain.DateOverride
		replaced int64
	)

	// 3. Вытесняем пересекающиеся исключения и создаем новое в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Удаляем исключения, пересекающиеся с новым по дате и времени
		replaced, err = uc.overrideRepo.DeleteOverlapping(
			txCtx, req.CoachID, req.OverrideDate, normalized.startTime, normalized.endTime)
		if err != nil {
			uc.logger.Error("CreateDateOverride: failed to delete overlapping overrides: %v", err)
			return fmt.Errorf("%w: failed to delete overlapping overrides: %v", ErrInternal, err)
		}

		// 3.2. Создаем новое исключение
		result, err = uc.overrideRepo.Create(txCtx, &domain.DateOverride{
			CoachID:      req.CoachID,
			OverrideDate: req.OverrideDate,
			StartTime:    normalized.startTime,
			EndTime:      normalized.endTime,
			OverrideType: normalized.overrideType,
			Title:        normalized.title,
		})
		if err != nil {
			uc.logger.Error("CreateDateOverride: failed to create override: %v", err)
			return fmt.Errorf("%w: failed to create override: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateDateOverride: created override id=%d for coach=%d (replaced %d)",
		result.ID, result.CoachID, replaced)

	// 4. Формируем ответ
	return &Response{
		ID:           result.ID,
		CoachID:      result.CoachID,
		OverrideDate: result.OverrideDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		OverrideType: string(result.OverrideType),
		Title:        result.Title,
		Replaced:     replaced,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
