package get_alternative_zones

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("get_alternative_zones: facility not found")

	// ErrZoneNotFound возвращается, когда предпочтительная зона не принадлежит объекту
	ErrZoneNotFound = errors.New("get_alternative_zones: zone not found")

	// ErrInvalidTimeSlot возвращается при некорректном интервале времени
	ErrInvalidTimeSlot = errors.New("get_alternative_zones: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_alternative_zones: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_alternative_zones: internal error")
)
