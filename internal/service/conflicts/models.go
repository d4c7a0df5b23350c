package conflicts

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request предлагаемое бронирование
type Request struct {
	FacilityID     string
	ZoneID         string // Опционально; без зон любое пересечение на объекте считается конфликтом
	StartDate      time.Time
	TimeSlot       string // "HH:MM-HH:MM"
	Mode           domain.BookingMode
	EndDate        *time.Time // Последний день для date-range и граница UNTIL для recurring
	RecurrenceRule string     // Только для recurring

	// Zones зоны объекта для учета иерархии (главная зона, подзоны, взаимные исключения)
	Zones []domain.Zone
}
