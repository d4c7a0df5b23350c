package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrInvalidTimeRange возвращается при некорректном формате интервала "HH:MM-HH:MM"
	ErrInvalidTimeRange = errors.New("invalid time range format")
)

const separator = ":"

// TimeString время суток в формате "HH:MM" (или "H:MM")
// Значение "24:00" допустимо и означает конец суток
type TimeString struct {
	minutes int
	valid   bool
}

// NewTimeStringFromString парсит строку вида "H:MM" или "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), separator)
	if len(parts) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	ts := TimeString{minutes: hour*60 + minute, valid: true}
	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return TimeString{}, fmt.Errorf("%w: %q out of range", ErrInvalidTimeString, s)
	}

	return ts, nil
}

// Hour возвращает час (0-24)
func (t TimeString) Hour() int {
	return t.minutes / 60
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	return t.minutes % 60
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// On возвращает момент времени на дату date в её часовом поясе
// "24:00" превращается в полночь следующего дня
func (t TimeString) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String возвращает время в формате "HH:MM"
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeRange интервал времени суток "HH:MM-HH:MM"
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// ParseTimeRange парсит строку вида "14:00-16:00"
// Не проверяет порядок границ - это делает вызывающий код
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := NewTimeStringFromString(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start: %v", ErrInvalidTimeRange, err)
	}
	end, err := NewTimeStringFromString(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end: %v", ErrInvalidTimeRange, err)
	}

	return TimeRange{Start: start, End: end}, nil
}

// String возвращает интервал в формате "HH:MM-HH:MM"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
