package servicecatalog

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда каталог не знает объект
	ErrFacilityNotFound = errors.New("facility not found in service catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("servicecatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("servicecatalog client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Каталог недоступен, цена считается без дополнительных услуг
	ErrServiceDegraded = errors.New("servicecatalog unavailable: graceful degradation applied")
)
