package conflicts

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// OccurrenceExpander разворачивает интервалы и правила повторения
// Реализация не возвращает ошибок: некорректный ввод дает пустой список
type OccurrenceExpander interface {
	GenerateOccurrences(startDate time.Time, slot string, rule string, until time.Time, limit int) []domain.TimeSlot
	ExpandBooking(b *domain.BookingEntry, until time.Time) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
