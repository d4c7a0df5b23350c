package timeslots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency частота повторения
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// untilLayout формат UNTIL в RRULE (всегда UTC)
const untilLayout = "20060102T150405Z"

// weekdayCodes двухбуквенные коды дней недели, индекс - time.Weekday (0 = воскресенье)
var weekdayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Recurrence структурированное представление правила повторения
type Recurrence struct {
	Frequency  Frequency
	Interval   int
	ByWeekdays []time.Weekday
	Count      *int
	Until      *time.Time
}

// GenerateRecurrenceRule собирает каноническую строку правила:
// FREQ=...;INTERVAL=...;BYDAY=...;COUNT=... (или UNTIL=...)
// Если переданы и count, и until, используется count - это не ошибка.
func GenerateRecurrenceRule(freq Frequency, interval int, weekdays []time.Weekday, count *int, until *time.Time) string {
	if interval < 1 {
		interval = 1
	}

	parts := []string{
		"FREQ=" + string(freq),
		"INTERVAL=" + strconv.Itoa(interval),
	}

	if len(weekdays) > 0 {
		codes := make([]string, 0, len(weekdays))
		for _, wd := range weekdays {
			codes = append(codes, weekdayCodes[int(wd)%7])
		}
		parts = append(parts, "BYDAY="+strings.Join(codes, ","))
	}

	switch {
	case count != nil:
		parts = append(parts, "COUNT="+strconv.Itoa(*count))
	case until != nil:
		parts = append(parts, "UNTIL="+until.UTC().Format(untilLayout))
	}

	return strings.Join(parts, ";")
}

// ParseRecurrenceRule разбирает и строго валидирует правило:
// FREQ из DAILY/WEEKLY/MONTHLY, положительный INTERVAL, BYDAY из двухбуквенных кодов
// и ровно один из COUNT/UNTIL
func ParseRecurrenceRule(rule string) (Recurrence, error) {
	rule = normalizeRule(rule)
	if rule == "" {
		return Recurrence{}, fmt.Errorf("%w: empty rule", ErrInvalidRecurrenceRule)
	}

	result := Recurrence{Interval: 1}

	for _, part := range strings.Split(rule, ";") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return Recurrence{}, fmt.Errorf("%w: malformed part %q", ErrInvalidRecurrenceRule, part)
		}
		key, value := strings.ToUpper(kv[0]), kv[1]

		switch key {
		case "FREQ":
			freq := Frequency(strings.ToUpper(value))
			if freq != FrequencyDaily && freq != FrequencyWeekly && freq != FrequencyMonthly {
				return Recurrence{}, fmt.Errorf("%w: unsupported FREQ %q", ErrInvalidRecurrenceRule, value)
			}
			result.Frequency = freq
		case "INTERVAL":
			interval, err := strconv.Atoi(value)
			if err != nil || interval < 1 {
				return Recurrence{}, fmt.Errorf("%w: INTERVAL must be a positive integer", ErrInvalidRecurrenceRule)
			}
			result.Interval = interval
		case "BYDAY":
			for _, code := range strings.Split(value, ",") {
				wd, ok := parseWeekdayCode(code)
				if !ok {
					return Recurrence{}, fmt.Errorf("%w: unknown weekday %q", ErrInvalidRecurrenceRule, code)
				}
				result.ByWeekdays = append(result.ByWeekdays, wd)
			}
		case "COUNT":
			count, err := strconv.Atoi(value)
			if err != nil || count < 1 {
				return Recurrence{}, fmt.Errorf("%w: COUNT must be a positive integer", ErrInvalidRecurrenceRule)
			}
			result.Count = &count
		case "UNTIL":
			until, err := parseUntil(value)
			if err != nil {
				return Recurrence{}, fmt.Errorf("%w: invalid UNTIL %q", ErrInvalidRecurrenceRule, value)
			}
			result.Until = &until
		default:
			return Recurrence{}, fmt.Errorf("%w: unsupported part %q", ErrInvalidRecurrenceRule, key)
		}
	}

	if result.Frequency == "" {
		return Recurrence{}, fmt.Errorf("%w: FREQ is required", ErrInvalidRecurrenceRule)
	}
	if (result.Count == nil) == (result.Until == nil) {
		return Recurrence{}, fmt.Errorf("%w: exactly one of COUNT or UNTIL is required", ErrInvalidRecurrenceRule)
	}

	return result, nil
}

// String возвращает каноническую строку правила
func (r Recurrence) String() string {
	return GenerateRecurrenceRule(r.Frequency, r.Interval, r.ByWeekdays, r.Count, r.Until)
}

// buildRRule строит генератор повторений, привязанный к dtstart
// terminated: в правиле есть COUNT или UNTIL
func buildRRule(rule string, dtstart time.Time) (*rrule.RRule, bool, error) {
	rule = normalizeRule(rule)
	if rule == "" {
		return nil, false, fmt.Errorf("%w: empty rule", ErrInvalidRecurrenceRule)
	}

	opt, err := rrule.StrToROptionInLocation(rule, dtstart.Location())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	opt.Dtstart = dtstart
	terminated := opt.Count > 0 || !opt.Until.IsZero()

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	return r, terminated, nil
}

func normalizeRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	return rule
}

func parseWeekdayCode(code string) (time.Weekday, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, c := range weekdayCodes {
		if c == code {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

func parseUntil(value string) (time.Time, error) {
	for _, layout := range []string{untilLayout, "20060102T150405", "20060102"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported UNTIL format")
}
