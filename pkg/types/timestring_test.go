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
		want    string
		wantErr bool
	}{
		{name: "two digit hour", input: "14:00", want: "14:00"},
		{name: "single digit hour", input: "9:30", want: "09:30"},
		{name: "end of day", input: "24:00", want: "24:00"},
		{name: "missing separator", input: "1400", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "24 with minutes", input: "24:30", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "single digit minute", input: "10:5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_IsAfter(t *testing.T) {
	start, err := NewTimeStringFromString("9:00")
	require.NoError(t, err)
	end, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)

	assert.True(t, end.IsAfter(start))
	assert.False(t, start.IsAfter(end))
	assert.False(t, start.IsAfter(start))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2024, 6, 10, 13, 45, 12, 0, time.UTC)

	ts, err := NewTimeStringFromString("14:15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 15, 0, 0, time.UTC), ts.On(date))

	midnight, err := NewTimeStringFromString("24:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), midnight.On(date))
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("9:00-11:30")
	require.NoError(t, err)
	assert.Equal(t, 9, r.Start.Hour())
	assert.Equal(t, 30, r.End.Minute())
	assert.Equal(t, "09:00-11:30", r.String())

	_, err = ParseTimeRange("09:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = ParseTimeRange("09:00-1100")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
