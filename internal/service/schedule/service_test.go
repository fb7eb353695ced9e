package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	dateoverrideRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/dateoverride"
	recurringblockRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/recurringblock"
	weeklyscheduleRepo "github.com/lengolf/LG-CoachingService/internal/infra/storage/weeklyschedule"
	"github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
	"github.com/lengolf/LG-CoachingService/internal/service/schedule/models"
	"github.com/lengolf/LG-CoachingService/pkg/ptr"
	"github.com/lengolf/LG-CoachingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeScheduleRepo struct {
	rules     []*domain.WeeklyScheduleRule
	upserted  *domain.WeeklyScheduleRule
	err       error
	deleteErr error
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, rule *domain.WeeklyScheduleRule) (*domain.WeeklyScheduleRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	rule.ID = 101
	f.upserted = rule
	return rule, nil
}

func (f *fakeScheduleRepo) GetByCoach(_ context.Context, _ int64) ([]*domain.WeeklyScheduleRule, error) {
	return f.rules, f.err
}

func (f *fakeScheduleRepo) DeleteByCoachAndDay(_ context.Context, _ int64, _ int) error {
	return f.deleteErr
}

type fakeBlockRepo struct {
	blocks    []*domain.RecurringBlock
	created   *domain.RecurringBlock
	err       error
	deleteErr error
}

func (f *fakeBlockRepo) Create(_ context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	if f.err != nil {
		return nil, f.err
	}
	block.ID = 201
	f.created = block
	return block, nil
}

func (f *fakeBlockRepo) GetByCoach(_ context.Context, _ int64) ([]*domain.RecurringBlock, error) {
	return f.blocks, f.err
}

func (f *fakeBlockRepo) Delete(_ context.Context, _, _ int64) error {
	return f.deleteErr
}

type fakeOverrideRepo struct {
	overrides []*domain.DateOverride
	gotRange  domain.OverrideDateRange
	err       error
	deleteErr error
}

func (f *fakeOverrideRepo) GetByCoachAndDateRange(_ context.Context, _ int64, dateRange domain.OverrideDateRange) ([]*domain.DateOverride, error) {
	f.gotRange = dateRange
	return f.overrides, f.err
}

func (f *fakeOverrideRepo) Delete(_ context.Context, _, _ int64) error {
	return f.deleteErr
}

type fakeStaffClient struct {
	coach *staffservice.Coach
	err   error
}

func (f *fakeStaffClient) GetCoach(_ context.Context, _ int64) (*staffservice.Coach, error) {
	return f.coach, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

func newTestService() (*Service, *fakeScheduleRepo, *fakeBlockRepo, *fakeOverrideRepo, *fakeStaffClient) {
	scheduleRepo := &fakeScheduleRepo{}
	blockRepo := &fakeBlockRepo{}
	overrideRepo := &fakeOverrideRepo{}
	staffClient := &fakeStaffClient{
		coach: &staffservice.Coach{ID: 7, DisplayName: "Boss", IsActive: true},
	}

	svc := NewService(scheduleRepo, blockRepo, overrideRepo, staffClient, nopLogger{})
	return svc, scheduleRepo, blockRepo, overrideRepo, staffClient
}

func TestUpsertWeeklyScheduleRule_HappyPath(t *testing.T) {
	svc, scheduleRepo, _, _, _ := newTestService()

	resp, err := svc.UpsertWeeklyScheduleRule(context.Background(), &models.UpsertWeeklyScheduleRequest{
		CoachID:     7,
		DayOfWeek:   1,
		StartTime:   "10:00:00",
		EndTime:     "17:00",
		IsAvailable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 1, resp.DayOfWeek)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "17:00", resp.EndTime)
	assert.True(t, resp.IsAvailable)

	require.NotNil(t, scheduleRepo.upserted)
	assert.Equal(t, types.TimeString("10:00"), scheduleRepo.upserted.StartTime)
}

func TestUpsertWeeklyScheduleRule_Validation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpsertWeeklyScheduleRule(ctx, &models.UpsertWeeklyScheduleRequest{
		CoachID: 0, DayOfWeek: 1, StartTime: "10:00", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertWeeklyScheduleRule(ctx, &models.UpsertWeeklyScheduleRequest{
		CoachID: 7, DayOfWeek: 7, StartTime: "10:00", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertWeeklyScheduleRule(ctx, &models.UpsertWeeklyScheduleRequest{
		CoachID: 7, DayOfWeek: 1, StartTime: "17:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.UpsertWeeklyScheduleRule(ctx, &models.UpsertWeeklyScheduleRequest{
		CoachID: 7, DayOfWeek: 1, StartTime: "bad", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpsertWeeklyScheduleRule_CoachNotFound(t *testing.T) {
	svc, _, _, _, staffClient := newTestService()
	staffClient.coach = nil
	staffClient.err = staffservice.ErrCoachNotFound

	_, err := svc.UpsertWeeklyScheduleRule(context.Background(), &models.UpsertWeeklyScheduleRequest{
		CoachID: 7, DayOfWeek: 1, StartTime: "10:00", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestUpsertWeeklyScheduleRule_RepositoryError(t *testing.T) {
	svc, scheduleRepo, _, _, _ := newTestService()
	scheduleRepo.err = errors.New("db down")

	_, err := svc.UpsertWeeklyScheduleRule(context.Background(), &models.UpsertWeeklyScheduleRequest{
		CoachID: 7, DayOfWeek: 1, StartTime: "10:00", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDeleteWeeklyScheduleRule_NotFound(t *testing.T) {
	svc, scheduleRepo, _, _, _ := newTestService()
	scheduleRepo.deleteErr = weeklyscheduleRepo.ErrRuleNotFound

	err := svc.DeleteWeeklyScheduleRule(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestDeleteWeeklyScheduleRule_HappyPath(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	err := svc.DeleteWeeklyScheduleRule(context.Background(), 7, 1)
	assert.NoError(t, err)
}

func TestCreateRecurringBlock_HappyPath(t *testing.T) {
	svc, _, blockRepo, _, _ := newTestService()

	resp, err := svc.CreateRecurringBlock(context.Background(), &models.CreateRecurringBlockRequest{
		CoachID:   7,
		Title:     "  Staff meeting  ",
		DayOfWeek: 2,
		StartTime: "11:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(201), resp.ID)
	assert.Equal(t, "Staff meeting", resp.Title)
	require.NotNil(t, blockRepo.created)
	assert.Equal(t, "Staff meeting", blockRepo.created.Title)
}

func TestCreateRecurringBlock_TitleRequired(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.CreateRecurringBlock(context.Background(), &models.CreateRecurringBlockRequest{
		CoachID:   7,
		Title:     "   ",
		DayOfWeek: 2,
		StartTime: "11:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteRecurringBlock_NotFound(t *testing.T) {
	svc, _, blockRepo, _, _ := newTestService()
	blockRepo.deleteErr = recurringblockRepo.ErrBlockNotFound

	err := svc.DeleteRecurringBlock(context.Background(), 7, 201)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDeleteDateOverride_NotFound(t *testing.T) {
	svc, _, _, overrideRepo, _ := newTestService()
	overrideRepo.deleteErr = dateoverrideRepo.ErrOverrideNotFound

	err := svc.DeleteDateOverride(context.Background(), 7, 301)
	assert.ErrorIs(t, err, ErrOverrideNotFound)
}

func TestGetCoachSchedule_DefaultRange(t *testing.T) {
	svc, scheduleRepo, blockRepo, overrideRepo, _ := newTestService()

	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	svc.timeProvider = &fakeTimeProvider{now: now}

	start, _ := types.NewTimeStringFromString("10:00")
	end, _ := types.NewTimeStringFromString("13:00")
	scheduleRepo.rules = []*domain.WeeklyScheduleRule{
		{ID: 1, CoachID: 7, DayOfWeek: 1, StartTime: start, EndTime: end, IsAvailable: true},
	}
	blockRepo.blocks = []*domain.RecurringBlock{
		{ID: 2, CoachID: 7, Title: "Meeting", DayOfWeek: 1, StartTime: start, EndTime: end},
	}
	overrideRepo.overrides = []*domain.DateOverride{
		{ID: 3, CoachID: 7, OverrideDate: now, OverrideType: domain.OverrideCustom, Title: ptr.Ptr("Tournament")},
	}

	resp, err := svc.GetCoachSchedule(context.Background(), &models.GetCoachScheduleRequest{CoachID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CoachID)
	assert.Equal(t, "Boss", resp.CoachName)
	require.Len(t, resp.WeeklySchedules, 1)
	require.Len(t, resp.RecurringBlocks, 1)
	require.Len(t, resp.DateOverrides, 1)
	assert.Equal(t, "2026-03-04", resp.DateOverrides[0].OverrideDate)

	assert.Equal(t, now, overrideRepo.gotRange.From)
	assert.Equal(t, now.AddDate(0, 0, domain.DefaultScheduleRangeDays), overrideRepo.gotRange.To)
}

func TestGetCoachSchedule_ExplicitRange(t *testing.T) {
	svc, _, _, overrideRepo, _ := newTestService()

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetCoachSchedule(context.Background(), &models.GetCoachScheduleRequest{
		CoachID:  7,
		FromDate: &from,
		ToDate:   &to,
	})
	require.NoError(t, err)

	assert.Equal(t, from, overrideRepo.gotRange.From)
	assert.Equal(t, to, overrideRepo.gotRange.To)
}

func TestGetCoachSchedule_InvalidRange(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	from := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetCoachSchedule(context.Background(), &models.GetCoachScheduleRequest{
		CoachID:  7,
		FromDate: &from,
		ToDate:   &to,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Половина периода без второй границы тоже отклоняется
	_, err = svc.GetCoachSchedule(context.Background(), &models.GetCoachScheduleRequest{
		CoachID:  7,
		FromDate: &from,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCoachSchedule_CoachNotFound(t *testing.T) {
	svc, _, _, _, staffClient := newTestService()
	staffClient.coach = nil
	staffClient.err = staffservice.ErrCoachNotFound

	_, err := svc.GetCoachSchedule(context.Background(), &models.GetCoachScheduleRequest{CoachID: 7})
	assert.ErrorIs(t, err, ErrCoachNotFound)
}
