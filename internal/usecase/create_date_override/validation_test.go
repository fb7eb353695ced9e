package create_date_override

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/LG-CoachingService/internal/domain"
	"github.com/lengolf/LG-CoachingService/pkg/ptr"
)

func validTimedRequest() *Request {
	return &Request{
		CoachID:      1,
		OverrideDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:    ptr.Ptr("10:00"),
		EndTime:      ptr.Ptr("12:00"),
		OverrideType: string(domain.OverrideUnavailable),
	}
}

func TestValidateRequest_TimedOverride(t *testing.T) {
	normalized, err := validateRequest(validTimedRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.OverrideUnavailable, normalized.overrideType)
	require.NotNil(t, normalized.startTime)
	require.NotNil(t, normalized.endTime)
	assert.Equal(t, "10:00", normalized.startTime.String())
	assert.Equal(t, "12:00", normalized.endTime.String())
	assert.Nil(t, normalized.title)
}

func TestValidateRequest_SecondsAreTruncated(t *testing.T) {
	req := validTimedRequest()
	req.StartTime = ptr.Ptr("10:00:30")
	req.EndTime = ptr.Ptr("12:15:00")

	normalized, err := validateRequest(req)
	require.NoError(t, err)

	assert.Equal(t, "10:00", normalized.startTime.String())
	assert.Equal(t, "12:15", normalized.endTime.String())
}

func TestValidateRequest_InvalidCoachID(t *testing.T) {
	req := validTimedRequest()
	req.CoachID = 0

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_MissingDate(t *testing.T) {
	req := validTimedRequest()
	req.OverrideDate = time.Time{}

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_UnknownType(t *testing.T) {
	req := validTimedRequest()
	req.OverrideType = "holiday"

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_TimedRequiresRange(t *testing.T) {
	req := validTimedRequest()
	req.EndTime = nil

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_MalformedTime(t *testing.T) {
	req := validTimedRequest()
	req.StartTime = ptr.Ptr("25:99")

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_StartMustPrecedeEnd(t *testing.T) {
	req := validTimedRequest()
	req.StartTime = ptr.Ptr("12:00")
	req.EndTime = ptr.Ptr("10:00")

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Пустой диапазон тоже некорректен
	req.StartTime = ptr.Ptr("12:00")
	req.EndTime = ptr.Ptr("12:00")

	_, err = validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestValidateRequest_CustomOverride(t *testing.T) {
	req := &Request{
		CoachID:      1,
		OverrideDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		OverrideType: string(domain.OverrideCustom),
		Title:        ptr.Ptr("Junior tournament"),
	}

	normalized, err := validateRequest(req)
	require.NoError(t, err)

	assert.Equal(t, domain.OverrideCustom, normalized.overrideType)
	assert.Nil(t, normalized.startTime)
	assert.Nil(t, normalized.endTime)
	require.NotNil(t, normalized.title)
	assert.Equal(t, "Junior tournament", *normalized.title)
}

func TestValidateRequest_CustomRequiresTitle(t *testing.T) {
	req := &Request{
		CoachID:      1,
		OverrideDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		OverrideType: string(domain.OverrideCustom),
	}

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.Title = ptr.Ptr("   ")
	_, err = validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_CustomRejectsTimeRange(t *testing.T) {
	req := &Request{
		CoachID:      1,
		OverrideDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		OverrideType: string(domain.OverrideCustom),
		Title:        ptr.Ptr("Junior tournament"),
		StartTime:    ptr.Ptr("10:00"),
	}

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_TitleTooLong(t *testing.T) {
	req := validTimedRequest()
	req.Title = ptr.Ptr(strings.Repeat("x", domain.MaxTitleLength+1))

	_, err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
