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
		{name: "plain HH:mm", input: "09:30", want: "09:30"},
		{name: "seconds truncated", input: "09:30:00", want: "09:30"},
		{name: "seconds truncated non-zero", input: "14:00:59", want: "14:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_RoundTrip(t *testing.T) {
	// Время, пришедшее от API как "HH:mm:ss", после нормализации
	// повторно сериализуется как "HH:mm"
	ts, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	again, err := NewTimeStringFromString(ts.String())
	require.NoError(t, err)
	assert.Equal(t, ts, again)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	got, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 3, 10, 14, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(moment))
}
