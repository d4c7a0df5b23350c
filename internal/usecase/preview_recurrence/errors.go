package preview_recurrence

import "errors"

var (
	// ErrInvalidTimeSlot возвращается при некорректном интервале времени
	ErrInvalidTimeSlot = errors.New("preview_recurrence: invalid time slot")

	// ErrInvalidRecurrenceRule возвращается при некорректном правиле повторения
	ErrInvalidRecurrenceRule = errors.New("preview_recurrence: invalid recurrence rule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_recurrence: invalid input data")
)
