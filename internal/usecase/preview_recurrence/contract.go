package preview_recurrence

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// OccurrenceGenerator интерфейс развертки правила повторения
type OccurrenceGenerator interface {
	GenerateOccurrences(startDate time.Time, slot string, rule string, until time.Time, limit int) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
