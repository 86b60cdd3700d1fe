package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid end of day", input: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "no separator", input: "0930", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr error
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "carry into next hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "minute overflow normalized", start: "08:00", minutes: 65, want: "09:05"},
		{name: "exactly end of day", start: "23:29", minutes: 30, want: "23:59"},
		{name: "past end of day", start: "23:45", minutes: 30, wantErr: ErrTimeOutOfRange},
		{name: "invalid receiver", start: "9:45", minutes: 30, wantErr: ErrInvalidTimeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringComparison(t *testing.T) {
	require.True(t, TimeString("08:00").IsBefore("08:30"))
	require.True(t, TimeString("09:30").IsBefore("13:00"))
	require.False(t, TimeString("13:00").IsBefore("13:00"))
	require.True(t, TimeString("13:30").IsAfter("09:00"))
}

func TestNewTimeStringDropsSeconds(t *testing.T) {
	moment := time.Date(2026, 3, 9, 8, 5, 42, 0, time.UTC)
	require.Equal(t, TimeString("08:05"), NewTimeString(moment))
}

func TestTimeStringIsZero(t *testing.T) {
	require.True(t, TimeString("").IsZero())
	require.False(t, TimeString("08:00").IsZero())
}
