package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestEasterSunday(t *testing.T) {
	assert.Equal(t, d(2024, time.March, 31), EasterSunday(2024))
	assert.Equal(t, d(2025, time.April, 20), EasterSunday(2025))
	assert.Equal(t, d(2026, time.April, 5), EasterSunday(2026))
	assert.Equal(t, d(2019, time.April, 21), EasterSunday(2019))
}

func TestCalendar_Holidays(t *testing.T) {
	cal := New([]time.Time{d(2024, time.December, 24)})

	assert.Equal(t, "Grunnlovsdag", cal.HolidayName(d(2024, time.May, 17)))
	assert.Equal(t, "Kristi himmelfartsdag", cal.HolidayName(d(2024, time.May, 9)))
	assert.Equal(t, "Andre pinsedag", cal.HolidayName(d(2024, time.May, 20)))
	assert.Equal(t, "Langfredag", cal.HolidayName(d(2024, time.March, 29)))
	assert.True(t, cal.IsHoliday(d(2024, time.December, 24)))
	assert.False(t, cal.IsHoliday(d(2024, time.June, 10)))

	// время суток не влияет на дату
	assert.True(t, cal.IsHoliday(time.Date(2024, time.December, 25, 18, 30, 0, 0, time.UTC)))

	assert.Len(t, Holidays(2025), 12)
}

func TestCalendar_DayType(t *testing.T) {
	cal := New(nil)

	assert.Equal(t, domain.DayTypeWeekday, cal.DayType(d(2024, time.June, 10)))
	assert.Equal(t, domain.DayTypeWeekend, cal.DayType(d(2024, time.June, 8)))
	assert.Equal(t, domain.DayTypeWeekend, cal.DayType(d(2024, time.June, 9)))
	// 17 мая 2025 - суббота, праздник важнее
	assert.Equal(t, domain.DayTypeHoliday, cal.DayType(d(2025, time.May, 17)))
}

func TestTimeSlotCategory(t *testing.T) {
	tests := []struct {
		hour int
		want domain.TimeSlotCategory
	}{
		{hour: 5, want: domain.TimeSlotNight},
		{hour: 6, want: domain.TimeSlotDay},
		{hour: 16, want: domain.TimeSlotDay},
		{hour: 17, want: domain.TimeSlotEvening},
		{hour: 21, want: domain.TimeSlotEvening},
		{hour: 22, want: domain.TimeSlotNight},
		{hour: 0, want: domain.TimeSlotNight},
	}

	for _, tt := range tests {
		got := TimeSlotCategory(time.Date(2024, 6, 10, tt.hour, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.want, got, "hour %d", tt.hour)
	}
}
