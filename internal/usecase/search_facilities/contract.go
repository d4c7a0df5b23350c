package search_facilities

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	List(ctx context.Context) ([]domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
