package timeslots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Service обертка над функциями развертки с логированием ошибок
// Ошибки разбора не пробрасываются вызывающему коду
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса интервалов
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// GenerateOccurrences разворачивает правило повторения, не более limit повторений (limit <= 0 без лимита)
// При ошибке разбора интервала или правила пишет в лог и возвращает пустой список
func (s *Service) GenerateOccurrences(startDate time.Time, slot string, rule string, until time.Time, limit int) []domain.TimeSlot {
	occurrences, err := ExpandOccurrences(startDate, slot, rule, until, limit)
	if err != nil {
		s.logger.Error("GenerateOccurrences: failed to expand rule=%q slot=%q from %s: %v",
			rule, slot, startDate.Format(domain.DateFormat), err)
		return []domain.TimeSlot{}
	}
	return occurrences
}

// ExpandBooking разворачивает существующее бронирование
// Некорректное правило логируется, бронирование тогда не участвует в проверке
func (s *Service) ExpandBooking(b *domain.BookingEntry, until time.Time) []domain.TimeSlot {
	occurrences, err := ExpandBooking(b, until)
	if err != nil {
		s.logger.Warn("ExpandBooking: skipping booking id=%s: %v", b.ID, err)
		return []domain.TimeSlot{}
	}
	return occurrences
}
