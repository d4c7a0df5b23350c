package get_zone_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("get_zone_availability: facility not found")

	// ErrInvalidTimeSlot возвращается при некорректном интервале времени
	ErrInvalidTimeSlot = errors.New("get_zone_availability: invalid time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_zone_availability: internal error")
)
