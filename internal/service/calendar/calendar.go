package calendar

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Holiday норвежский праздничный день (helligdag)
type Holiday struct {
	Date time.Time
	Name string
}

// Calendar календарь выходных и праздничных дней
// Только читается после создания, безопасен для конкурентного использования
type Calendar struct {
	extra map[dateKey]string
}

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{y, m, d}
}

// New создает календарь; extraDates - дополнительные нерабочие дни из конфигурации
func New(extraDates []time.Time) *Calendar {
	extra := make(map[dateKey]string, len(extraDates))
	for _, d := range extraDates {
		extra[keyOf(d)] = "Ekstra fridag"
	}
	return &Calendar{extra: extra}
}

// Holidays возвращает официальные праздники Норвегии за год, отсортированные по дате
func Holidays(year int) []Holiday {
	easter := EasterSunday(year)
	date := func(m time.Month, d int) time.Time {
		return time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []Holiday{
		{Date: date(time.January, 1), Name: "Første nyttårsdag"},
		{Date: easter.AddDate(0, 0, -3), Name: "Skjærtorsdag"},
		{Date: easter.AddDate(0, 0, -2), Name: "Langfredag"},
		{Date: easter, Name: "Første påskedag"},
		{Date: easter.AddDate(0, 0, 1), Name: "Andre påskedag"},
		{Date: date(time.May, 1), Name: "Arbeidernes dag"},
		{Date: date(time.May, 17), Name: "Grunnlovsdag"},
		{Date: easter.AddDate(0, 0, 39), Name: "Kristi himmelfartsdag"},
		{Date: easter.AddDate(0, 0, 49), Name: "Første pinsedag"},
		{Date: easter.AddDate(0, 0, 50), Name: "Andre pinsedag"},
		{Date: date(time.December, 25), Name: "Første juledag"},
		{Date: date(time.December, 26), Name: "Andre juledag"},
	}
}

// EasterSunday дата Пасхи по григорианскому календарю (алгоритм Гаусса в варианте Meeus/Jones/Butcher)
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// HolidayName возвращает название праздника для даты или пустую строку
// Сравнивается только календарная дата по местному времени t
func (c *Calendar) HolidayName(t time.Time) string {
	key := keyOf(t)
	for _, h := range Holidays(t.Year()) {
		if keyOf(h.Date) == key {
			return h.Name
		}
	}
	return c.extra[key]
}

// IsHoliday проверяет, является ли дата праздничной
func (c *Calendar) IsHoliday(t time.Time) bool {
	return c.HolidayName(t) != ""
}

// IsWeekend проверяет, приходится ли дата на субботу или воскресенье
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DayType определяет тип дня: праздник важнее выходного
func (c *Calendar) DayType(t time.Time) domain.DayType {
	switch {
	case c.IsHoliday(t):
		return domain.DayTypeHoliday
	case IsWeekend(t):
		return domain.DayTypeWeekend
	default:
		return domain.DayTypeWeekday
	}
}

// TimeSlotCategory категория времени суток по часу начала интервала:
// день 06-17, вечер 17-22, ночь в остальное время
func TimeSlotCategory(start time.Time) domain.TimeSlotCategory {
	hour := start.Hour()
	switch {
	case hour >= domain.DayStartHour && hour < domain.EveningStartHour:
		return domain.TimeSlotDay
	case hour >= domain.EveningStartHour && hour < domain.NightStartHour:
		return domain.TimeSlotEvening
	default:
		return domain.TimeSlotNight
	}
}
