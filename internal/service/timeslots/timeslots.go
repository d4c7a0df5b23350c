package timeslots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// ParseTimeSlot превращает строку "H:MM-H:MM" в конкретный интервал на дату date
// Время берется по местным часам date (в её часовом поясе), секунды обнуляются.
// "24:00" в качестве конца означает полночь следующего дня.
// Интервалы через полночь ("23:00-01:00") не поддерживаются.
func ParseTimeSlot(date time.Time, slot string) (domain.TimeSlot, error) {
	tr, err := types.ParseTimeRange(slot)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if tr.Start.IsAfter(tr.End) {
		return domain.TimeSlot{}, fmt.Errorf("%w: %s", ErrSlotCrossesMidnight, tr)
	}

	result := domain.TimeSlot{
		Start: tr.Start.On(date),
		End:   tr.End.On(date),
	}
	if !result.IsValid() {
		return domain.TimeSlot{}, fmt.Errorf("%w: empty interval %s", ErrInvalidTimeSlot, tr)
	}
	return result, nil
}

// ExpandOccurrences разворачивает правило повторения в список интервалов
// Генератор привязан к началу интервала на startDate, until - включающая верхняя граница
// (повторения строго после until отсекает сам генератор).
// Нулевой until: развертку ограничивают COUNT/UNTIL самого правила,
// правило без них ограничивается startDate + DefaultRecurrenceHorizon.
// limit > 0 останавливает генератор после limit повторений.
func ExpandOccurrences(startDate time.Time, slot string, rule string, until time.Time, limit int) ([]domain.TimeSlot, error) {
	first, err := ParseTimeSlot(startDate, slot)
	if err != nil {
		return nil, err
	}

	return expand(first.Start, first.Duration(), rule, until, limit)
}

// ExpandBooking разворачивает существующее бронирование
// Повторяющееся бронирование разворачивается от своего начала до until,
// обычное возвращается одним интервалом из сохраненных start/end.
func ExpandBooking(b *domain.BookingEntry, until time.Time) ([]domain.TimeSlot, error) {
	if !b.IsRecurring() {
		return []domain.TimeSlot{b.Slot()}, nil
	}

	duration := b.EndDateTime.Sub(b.StartDateTime)
	if duration <= 0 {
		return nil, fmt.Errorf("%w: booking %s ends before it starts", ErrInvalidTimeSlot, b.ID)
	}

	return expand(b.StartDateTime, duration, *b.RecurrenceRule, until, 0)
}

// DailySlots возвращает по одному интервалу на каждый календарный день
// от startDate до endDate включительно, с одним и тем же временем суток
// limit > 0 ограничивает число интервалов первыми limit днями
func DailySlots(startDate, endDate time.Time, slot string, limit int) ([]domain.TimeSlot, error) {
	days := DayCount(startDate, endDate)
	if days < 1 {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange,
			endDate.Format(domain.DateFormat), startDate.Format(domain.DateFormat))
	}
	if limit > 0 && days > limit {
		days = limit
	}

	start := truncateToDay(startDate)
	slots := make([]domain.TimeSlot, 0, days)
	for i := 0; i < days; i++ {
		s, err := ParseTimeSlot(start.AddDate(0, 0, i), slot)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}

	return slots, nil
}

// DayCount число календарных дней от startDate до endDate включительно
// Считается по датам без перебора дней; endDate раньше startDate дает значение < 1
func DayCount(startDate, endDate time.Time) int {
	sy, sm, sd := startDate.Date()
	ey, em, ed := endDate.Date()
	start := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC).Unix()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC).Unix()
	return int((end-start)/secondsInDay) + 1
}

// EndOfDay возвращает последний момент календарного дня date
// Используется как включающая граница UNTIL для дат без времени
func EndOfDay(date time.Time) time.Time {
	return truncateToDay(date).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// expand перебирает повторения итератором, останавливаясь на until или limit
func expand(dtstart time.Time, duration time.Duration, rule string, until time.Time, limit int) ([]domain.TimeSlot, error) {
	dtstart = dtstart.Truncate(time.Second)
	r, terminated, err := buildRRule(rule, dtstart)
	if err != nil {
		return nil, err
	}

	// Без внешней границы и без COUNT/UNTIL правило бесконечно
	if until.IsZero() && !terminated {
		until = dtstart.Add(domain.DefaultRecurrenceHorizon)
	}

	slots := []domain.TimeSlot{}
	next := r.Iterator()
	for start, ok := next(); ok; start, ok = next() {
		if !until.IsZero() && start.After(until) {
			break
		}
		if limit > 0 && len(slots) >= limit {
			break
		}
		slots = append(slots, domain.TimeSlot{Start: start, End: start.Add(duration)})
	}

	return slots, nil
}

const secondsInDay = 24 * 60 * 60

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
