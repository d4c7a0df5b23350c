package check_conflict

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("check_conflict: facility not found")

	// ErrZoneNotFound возвращается, когда зона не принадлежит объекту
	ErrZoneNotFound = errors.New("check_conflict: zone not found")

	// ErrInvalidTimeSlot возвращается при некорректном интервале времени
	ErrInvalidTimeSlot = errors.New("check_conflict: invalid time slot")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("check_conflict: invalid date range")

	// ErrInvalidRecurrenceRule возвращается при некорректном правиле повторения
	ErrInvalidRecurrenceRule = errors.New("check_conflict: invalid recurrence rule")

	// ErrTooManyOccurrences возвращается, когда развертка превышает допустимый размер
	ErrTooManyOccurrences = errors.New("check_conflict: too many occurrences")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflict: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflict: internal error")
)
