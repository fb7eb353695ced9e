package get_week_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	getWeekAvailability "github.com/lengolf/LG-CoachingService/internal/usecase/get_week_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *getWeekAvailability.Request
	resp   *getWeekAvailability.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getWeekAvailability.Request) (*getWeekAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func weekResponse() *getWeekAvailability.Response {
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days := make([]domain.DayAvailability, 0, domain.DaysPerWeek)
	for i := 0; i < domain.DaysPerWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		slots := make([]domain.TimeSlot, 0, domain.SlotCount)
		for _, label := range domain.SlotTimes() {
			slots = append(slots, domain.TimeSlot{Time: label, Status: domain.SlotUnavailable})
		}
		days = append(days, domain.DayAvailability{
			Date:      date,
			DayOfWeek: int(date.Weekday()),
			TimeSlots: slots,
		})
	}

	return &getWeekAvailability.Response{
		CoachID:   7,
		CoachName: "Boss",
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
		Days:      days,
	}
}

func doRequest(t *testing.T, useCase *fakeUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/coaches/{coachId}/availability/week", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestHandle_HappyPath(t *testing.T) {
	useCase := &fakeUseCase{resp: weekResponse()}

	rec := doRequest(t, useCase, "/api/v1/coaches/7/availability/week?startDate=2026-03-04")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, int64(7), useCase.gotReq.CoachID)
	assert.Equal(t, "2026-03-04", useCase.gotReq.StartDate.Format(domain.DateFormat))

	var resp WeekAvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Boss", resp.CoachName)
	assert.Equal(t, "2026-03-02", resp.WeekStart)
	assert.Equal(t, "2026-03-08", resp.WeekEnd)
	assert.Equal(t, "2026-02-23", resp.PrevWeekStart)
	assert.Equal(t, "2026-03-09", resp.NextWeekStart)
	require.Len(t, resp.Days, domain.DaysPerWeek)
	for _, day := range resp.Days {
		assert.Len(t, day.TimeSlots, domain.SlotCount)
	}
}

func TestHandle_DefaultsToCurrentWeek(t *testing.T) {
	useCase := &fakeUseCase{resp: weekResponse()}

	rec := doRequest(t, useCase, "/api/v1/coaches/7/availability/week")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotReq)
	assert.WithinDuration(t, time.Now(), useCase.gotReq.StartDate, time.Minute)
}

func TestHandle_InvalidCoachID(t *testing.T) {
	useCase := &fakeUseCase{resp: weekResponse()}

	rec := doRequest(t, useCase, "/api/v1/coaches/abc/availability/week")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.gotReq)
}

func TestHandle_InvalidStartDate(t *testing.T) {
	useCase := &fakeUseCase{resp: weekResponse()}

	rec := doRequest(t, useCase, "/api/v1/coaches/7/availability/week?startDate=04-03-2026")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.gotReq)
}

func TestHandle_CoachNotFound(t *testing.T) {
	useCase := &fakeUseCase{err: getWeekAvailability.ErrCoachNotFound}

	rec := doRequest(t, useCase, "/api/v1/coaches/7/availability/week?startDate=2026-03-04")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	useCase := &fakeUseCase{err: errors.New("boom")}

	rec := doRequest(t, useCase, "/api/v1/coaches/7/availability/week?startDate=2026-03-04")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
