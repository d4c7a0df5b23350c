package timeslots

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

type nopLogger struct {
	errors int
}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) { l.errors++ }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseTimeSlot(t *testing.T) {
	day := date(2024, 6, 10)

	slot, err := ParseTimeSlot(day, "14:00-16:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC), slot.End)

	slot, err = ParseTimeSlot(day, "9:30-10:15")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, slot.Duration())

	slot, err = ParseTimeSlot(day, "22:00-24:00")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 11), slot.End)
}

func TestParseTimeSlot_KeepsLocation(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Skip("tzdata not available")
	}

	slot, err := ParseTimeSlot(time.Date(2024, 6, 10, 8, 12, 33, 0, oslo), "14:00-16:00")
	require.NoError(t, err)
	assert.Equal(t, oslo, slot.Start.Location())
	assert.Equal(t, 14, slot.Start.Hour())
	assert.Equal(t, 0, slot.Start.Second())
}

func TestParseTimeSlot_Invalid(t *testing.T) {
	day := date(2024, 6, 10)

	tests := []struct {
		name    string
		slot    string
		wantErr error
	}{
		{name: "no separator", slot: "14:00", wantErr: ErrInvalidTimeSlot},
		{name: "missing colon", slot: "1400-1600", wantErr: ErrInvalidTimeSlot},
		{name: "garbage", slot: "ab:cd-ef:gh", wantErr: ErrInvalidTimeSlot},
		{name: "empty interval", slot: "14:00-14:00", wantErr: ErrInvalidTimeSlot},
		{name: "crosses midnight", slot: "23:00-01:00", wantErr: ErrSlotCrossesMidnight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTimeSlot(day, tt.slot)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandOccurrences_WeeklyByDayCount(t *testing.T) {
	start := date(2024, 6, 3) // Monday

	slots, err := ExpandOccurrences(start, "14:00-16:00", "FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4", date(2024, 12, 31), 0)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	wantDays := []int{3, 5, 10, 12}
	for i, s := range slots {
		assert.Equal(t, wantDays[i], s.Start.Day())
		assert.Equal(t, 14, s.Start.Hour())
		assert.Equal(t, 2*time.Hour, s.Duration())
	}
}

func TestExpandOccurrences_RespectsUntil(t *testing.T) {
	start := date(2024, 6, 3)
	until := time.Date(2024, 6, 20, 14, 0, 0, 0, time.UTC)

	slots, err := ExpandOccurrences(start, "14:00-15:00", "FREQ=DAILY;INTERVAL=1;UNTIL=20250101T000000Z", until, 0)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		assert.False(t, s.Start.After(until), "occurrence %s is after until", s.Start)
	}
	// until itself is inclusive
	assert.Equal(t, until, slots[len(slots)-1].Start)
	assert.Len(t, slots, 18)
}

func TestExpandOccurrences_AcceptsPrefix(t *testing.T) {
	slots, err := ExpandOccurrences(date(2024, 6, 3), "10:00-11:00", "RRULE:FREQ=DAILY;COUNT=3", time.Time{}, 0)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestExpandOccurrences_CountBeyondHorizon(t *testing.T) {
	slots, err := ExpandOccurrences(date(2024, 6, 10), "14:00-16:00", "FREQ=MONTHLY;COUNT=24", time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Equal(t, time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC), slots[23].Start)
}

func TestExpandOccurrences_UnterminatedRuleUsesHorizon(t *testing.T) {
	slots, err := ExpandOccurrences(date(2024, 6, 3), "10:00-11:00", "FREQ=WEEKLY", time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, slots, 53)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), slots[52].Start)
}

func TestExpandOccurrences_StopsAtLimit(t *testing.T) {
	slots, err := ExpandOccurrences(date(2024, 6, 3), "10:00-11:00", "FREQ=DAILY;COUNT=5000", time.Time{}, 11)
	require.NoError(t, err)
	assert.Len(t, slots, 11)
}

func TestExpandOccurrences_InvalidRule(t *testing.T) {
	_, err := ExpandOccurrences(date(2024, 6, 3), "10:00-11:00", "FREQ=SOMETIMES", date(2024, 7, 1), 0)
	assert.ErrorIs(t, err, ErrInvalidRecurrenceRule)
}

func TestService_GenerateOccurrences_FailsSoft(t *testing.T) {
	log := &nopLogger{}
	svc := NewService(log)

	slots := svc.GenerateOccurrences(date(2024, 6, 3), "10:00-11:00", "not a rule", date(2024, 7, 1), 0)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
	assert.Equal(t, 1, log.errors)

	slots = svc.GenerateOccurrences(date(2024, 6, 3), "10-11", "FREQ=DAILY;COUNT=2", date(2024, 7, 1), 0)
	assert.Empty(t, slots)
	assert.Equal(t, 2, log.errors)
}

func TestExpandBooking(t *testing.T) {
	single := &domain.BookingEntry{
		ID:            "b-1",
		StartDateTime: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC),
	}
	slots, err := ExpandBooking(single, date(2025, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{single.Slot()}, slots)

	weekly := &domain.BookingEntry{
		ID:             "b-2",
		StartDateTime:  time.Date(2024, 6, 4, 18, 0, 0, 0, time.UTC),
		EndDateTime:    time.Date(2024, 6, 4, 19, 30, 0, 0, time.UTC),
		RecurrenceRule: ptr.Ptr("FREQ=WEEKLY;INTERVAL=2;UNTIL=20240731T235959Z"),
	}
	slots, err = ExpandBooking(weekly, EndOfDay(date(2024, 12, 31)))
	require.NoError(t, err)
	require.Len(t, slots, 5) // Jun 4, 18; Jul 2, 16, 30
	assert.Equal(t, 90*time.Minute, slots[4].Duration())
	assert.Equal(t, time.July, slots[4].Start.Month())
	assert.Equal(t, 30, slots[4].Start.Day())
}

func TestDailySlots(t *testing.T) {
	slots, err := DailySlots(date(2024, 6, 10), date(2024, 6, 12), "08:00-09:00", 0)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, 12, slots[2].Start.Day())

	_, err = DailySlots(date(2024, 6, 12), date(2024, 6, 10), "08:00-09:00", 0)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDailySlots_Limit(t *testing.T) {
	slots, err := DailySlots(date(2024, 1, 1), date(9999, 12, 31), "08:00-09:00", 1001)
	require.NoError(t, err)
	require.Len(t, slots, 1001)
	assert.Equal(t, date(2026, 9, 27).Add(8*time.Hour), slots[1000].Start)
}

func TestDayCount(t *testing.T) {
	assert.Equal(t, 1, DayCount(date(2024, 6, 10), date(2024, 6, 10)))
	assert.Equal(t, 366, DayCount(date(2024, 1, 1), date(2024, 12, 31)))
	assert.Equal(t, 0, DayCount(date(2024, 6, 12), date(2024, 6, 11)))
	assert.Equal(t, 356478, DayCount(date(2024, 1, 1), date(3000, 1, 1)))

	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)
	// Переход на летнее время не сдвигает счет дней
	assert.Equal(t, 3, DayCount(time.Date(2024, 3, 30, 23, 0, 0, 0, oslo), time.Date(2024, 4, 1, 0, 30, 0, 0, oslo)))
}

func TestGenerateRecurrenceRule(t *testing.T) {
	rule := GenerateRecurrenceRule(FrequencyWeekly, 1, []time.Weekday{time.Monday, time.Wednesday}, ptr.Ptr(4), nil)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=1;BYDAY=MO,WE;COUNT=4", rule)

	until := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	rule = GenerateRecurrenceRule(FrequencyDaily, 2, nil, nil, &until)
	assert.Equal(t, "FREQ=DAILY;INTERVAL=2;UNTIL=20241231T235959Z", rule)

	// count wins when both terminators are supplied
	rule = GenerateRecurrenceRule(FrequencyMonthly, 1, nil, ptr.Ptr(6), &until)
	assert.Equal(t, "FREQ=MONTHLY;INTERVAL=1;COUNT=6", rule)
}

func TestParseRecurrenceRule(t *testing.T) {
	r, err := ParseRecurrenceRule("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,FR;COUNT=10")
	require.NoError(t, err)
	assert.Equal(t, FrequencyWeekly, r.Frequency)
	assert.Equal(t, 2, r.Interval)
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, r.ByWeekdays)
	require.NotNil(t, r.Count)
	assert.Equal(t, 10, *r.Count)
	assert.Equal(t, "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,FR;COUNT=10", r.String())

	invalid := []string{
		"",
		"FREQ=YEARLY;COUNT=1",
		"FREQ=DAILY;INTERVAL=0;COUNT=1",
		"FREQ=WEEKLY;BYDAY=XX;COUNT=1",
		"FREQ=DAILY",
		"FREQ=DAILY;COUNT=2;UNTIL=20241231T000000Z",
		"INTERVAL=1;COUNT=2",
	}
	for _, s := range invalid {
		_, err := ParseRecurrenceRule(s)
		assert.ErrorIs(t, err, ErrInvalidRecurrenceRule, s)
	}
}
