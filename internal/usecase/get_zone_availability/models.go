package get_zone_availability

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/availability"
)

// Request модель запроса статуса зон
type Request struct {
	FacilityID string
	Date       time.Time // Дата (без времени)
	TimeSlot   string    // "HH:MM-HH:MM"
}

// Response модель ответа со статусом каждой зоны объекта
type Response struct {
	Zones          []availability.ZoneStatus
	AvailableCount int
}
