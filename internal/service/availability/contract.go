package availability

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// OccurrenceExpander разворачивает существующие бронирования в интервалы
type OccurrenceExpander interface {
	ExpandBooking(b *domain.BookingEntry, until time.Time) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
