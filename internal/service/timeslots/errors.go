package timeslots

import "errors"

var (
	// ErrInvalidTimeSlot возвращается при некорректной строке интервала "HH:MM-HH:MM"
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotCrossesMidnight возвращается, когда конец интервала раньше начала
	ErrSlotCrossesMidnight = errors.New("time slot crosses midnight")

	// ErrInvalidRecurrenceRule возвращается при некорректном правиле повторения
	ErrInvalidRecurrenceRule = errors.New("invalid recurrence rule")

	// ErrInvalidDateRange возвращается, когда конец периода раньше начала
	ErrInvalidDateRange = errors.New("invalid date range")
)
