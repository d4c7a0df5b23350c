package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса на проверку конфликта
type Request struct {
	FacilityID     string
	ZoneID         string             // Пусто, если бронируется весь объект
	StartDate      time.Time          // Дата начала (без времени)
	TimeSlot       string             // "HH:MM-HH:MM"
	Mode           domain.BookingMode // Пусто считается one-time
	EndDate        *time.Time         // Для date-range и как граница для recurring
	RecurrenceRule string             // Только для recurring
}

// Response модель ответа с результатом проверки
type Response struct {
	HasConflict          bool
	ConflictType         domain.ConflictType
	ConflictingBookingID string
	ConflictingDates     []time.Time
	ProposedOccurrences  int // Сколько интервалов проверено
}
