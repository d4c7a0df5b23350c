package preview_recurrence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newUseCase(limit int) *UseCase {
	return NewUseCase(timeslots.NewService(testLogger{}), testLogger{}, limit)
}

var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_FromParts(t *testing.T) {
	resp, err := newUseCase(0).Execute(context.Background(), &Request{
		StartDate: monday,
		TimeSlot:  "18:00-20:00",
		Frequency: timeslots.FrequencyWeekly,
		Weekdays:  []time.Weekday{time.Monday, time.Wednesday},
		Count:     ptr.Ptr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=1;BYDAY=MO,WE;COUNT=4", resp.Rule)
	require.Len(t, resp.Occurrences, 4)
	assert.Equal(t, time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC), resp.Occurrences[3].Start)
	assert.Equal(t, time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC), resp.Occurrences[3].End)
	assert.False(t, resp.Truncated)
}

func TestUseCase_Execute_FromRuleWithUntil(t *testing.T) {
	resp, err := newUseCase(0).Execute(context.Background(), &Request{
		StartDate: monday,
		TimeSlot:  "09:00-10:00",
		Rule:      "RRULE:FREQ=DAILY;UNTIL=20240607T235959Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "FREQ=DAILY;INTERVAL=1;UNTIL=20240607T235959Z", resp.Rule)
	assert.Len(t, resp.Occurrences, 5)
}

func TestUseCase_Execute_Truncated(t *testing.T) {
	resp, err := newUseCase(3).Execute(context.Background(), &Request{
		StartDate: monday,
		TimeSlot:  "09:00-10:00",
		Frequency: timeslots.FrequencyDaily,
		Count:     ptr.Ptr(10),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Occurrences, 3)
	assert.True(t, resp.Truncated)
}

func TestUseCase_Execute_CountBeyondOneYear(t *testing.T) {
	resp, err := newUseCase(0).Execute(context.Background(), &Request{
		StartDate: monday,
		TimeSlot:  "09:00-10:00",
		Rule:      "FREQ=MONTHLY;COUNT=24",
	})

	require.NoError(t, err)
	require.Len(t, resp.Occurrences, 24)
	assert.Equal(t, time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC), resp.Occurrences[23].Start)
	assert.False(t, resp.Truncated)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{name: "no start", req: Request{TimeSlot: "09:00-10:00", Rule: "FREQ=DAILY;COUNT=1"}, want: ErrInvalidInput},
		{name: "bad slot", req: Request{StartDate: monday, TimeSlot: "9-10", Rule: "FREQ=DAILY;COUNT=1"}, want: ErrInvalidTimeSlot},
		{name: "no end condition", req: Request{StartDate: monday, TimeSlot: "09:00-10:00", Frequency: timeslots.FrequencyDaily}, want: ErrInvalidRecurrenceRule},
		{name: "bad weekday", req: Request{StartDate: monday, TimeSlot: "09:00-10:00", Frequency: timeslots.FrequencyWeekly, Weekdays: []time.Weekday{9}, Count: ptr.Ptr(1)}, want: ErrInvalidInput},
		{name: "bad rule text", req: Request{StartDate: monday, TimeSlot: "09:00-10:00", Rule: "FREQ=YEARLY;COUNT=2"}, want: ErrInvalidRecurrenceRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(0).Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
