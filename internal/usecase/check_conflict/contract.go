package check_conflict

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/conflicts"
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

// ConflictChecker интерфейс сервиса проверки конфликтов
type ConflictChecker interface {
	CheckBookingConflict(req conflicts.Request, existing []domain.BookingEntry) domain.ConflictCheckResult
	ProposedOccurrences(req conflicts.Request, limit int) []domain.TimeSlot
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс сбора метрик проверок
type Metrics interface {
	ObserveConflictCheck(mode string, hasConflict bool, proposedOccurrences int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
