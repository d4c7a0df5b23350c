package get_zone_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/availability"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFacility(ctx context.Context, filter domain.BookingsFilter) ([]domain.BookingEntry, error)
}

// ZoneRepository интерфейс репозитория зон
type ZoneRepository interface {
	GetByFacility(ctx context.Context, facilityID string) ([]domain.Zone, error)
}

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// AvailabilityService интерфейс сервиса доступности зон
type AvailabilityService interface {
	GetZoneAvailabilityStatus(zones []domain.Zone, bookings []domain.BookingEntry, date time.Time, slot string) ([]availability.ZoneStatus, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
