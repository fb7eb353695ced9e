package get_week_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/internal/integrations/staffservice"
)

// Фейки зависимостей use case

type fakeScheduleRepo struct {
	rules []*domain.WeeklyScheduleRule
	err   error
}

func (f *fakeScheduleRepo) GetByCoach(_ context.Context, _ int64) ([]*domain.WeeklyScheduleRule, error) {
	return f.rules, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.RecurringBlock
	err    error
}

func (f *fakeBlockRepo) GetByCoach(_ context.Context, _ int64) ([]*domain.RecurringBlock, error) {
	return f.blocks, f.err
}

type fakeOverrideRepo struct {
	overrides []*domain.DateOverride
	err       error

	gotRange domain.OverrideDateRange
}

func (f *fakeOverrideRepo) GetByCoachAndDateRange(_ context.Context, _ int64, dateRange domain.OverrideDateRange) ([]*domain.DateOverride, error) {
	f.gotRange = dateRange
	return f.overrides, f.err
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

func newTestUseCase(scheduleRepo *fakeScheduleRepo, blockRepo *fakeBlockRepo, overrideRepo *fakeOverrideRepo, staff *fakeStaffClient) *UseCase {
	uc := NewUseCase(scheduleRepo, blockRepo, overrideRepo, staff, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)}
	return uc
}

func activeCoach() *fakeStaffClient {
	return &fakeStaffClient{coach: &staffservice.Coach{ID: 7, DisplayName: "Coach Boss", IsActive: true}}
}

func TestExecute_HappyPath(t *testing.T) {
	overrideRepo := &fakeOverrideRepo{}
	uc := newTestUseCase(
		&fakeScheduleRepo{rules: []*domain.WeeklyScheduleRule{mondayRule()}},
		&fakeBlockRepo{},
		overrideRepo,
		activeCoach(),
	)

	// Среда внутри недели 2026-03-02..2026-03-08
	resp, err := uc.Execute(context.Background(), &Request{
		CoachID:   7,
		StartDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.CoachID)
	assert.Equal(t, "Coach Boss", resp.CoachName)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), resp.WeekStart)
	assert.Equal(t, time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC), resp.WeekEnd)
	require.Len(t, resp.Days, 7)

	// Окно выборки исключений совпадает с границами недели
	assert.Equal(t, resp.WeekStart, overrideRepo.gotRange.From)
	assert.Equal(t, resp.WeekEnd, overrideRepo.gotRange.To)

	// IsToday выставлен по TimeProvider (среда 2026-03-04)
	assert.False(t, resp.Days[0].IsToday)
	assert.True(t, resp.Days[2].IsToday)

	monday := dayByWeekday(t, resp.Days, time.Monday)
	assert.Equal(t, domain.SlotAvailable, slotByTime(t, monday, "10:00").Status)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBlockRepo{}, &fakeOverrideRepo{}, activeCoach())

	_, err := uc.Execute(context.Background(), &Request{CoachID: 0, StartDate: testMonday()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CoachID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CoachNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeScheduleRepo{}, &fakeBlockRepo{}, &fakeOverrideRepo{},
		&fakeStaffClient{err: staffservice.ErrCoachNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{CoachID: 7, StartDate: testMonday()})
	assert.ErrorIs(t, err, ErrCoachNotFound)
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	uc := newTestUseCase(
		&fakeScheduleRepo{err: errors.New("connection refused")},
		&fakeBlockRepo{},
		&fakeOverrideRepo{},
		activeCoach(),
	)

	_, err := uc.Execute(context.Background(), &Request{CoachID: 7, StartDate: testMonday()})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_EmptyCollectionsAreNotAnError(t *testing.T) {
	uc := newTestUseCase(&fakeScheduleRepo{}, &fakeBlockRepo{}, &fakeOverrideRepo{}, activeCoach())

	resp, err := uc.Execute(context.Background(), &Request{CoachID: 7, StartDate: testMonday()})
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, slot := range day.TimeSlots {
			assert.Equal(t, domain.SlotUnavailable, slot.Status)
		}
	}
}
