package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "plain HH:MM", input: "10:00", want: "10:00"},
		{name: "seconds are truncated", input: "10:00:00", want: "10:00"},
		{name: "non-zero seconds are truncated", input: "18:30:45", want: "18:30"},
		{name: "single digit hour is zero-padded", input: "9:05", want: "09:05"},
		{name: "whitespace is trimmed", input: " 12:15 ", want: "12:15"},
		{name: "hour out of range", input: "25:99", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "garbage", input: "midnight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 2, 7, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("07:05"), NewTimeString(moment))
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("21:00").IsAfter("20:59"))
	assert.False(t, TimeString("21:00").IsAfter("21:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)

	got, err = TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)
}

func TestTimeString_TotalMinutes(t *testing.T) {
	got, err := TimeString("13:30").TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+30, got)

	_, err = TimeString("25:99").TotalMinutes()
	assert.Error(t, err)
}
