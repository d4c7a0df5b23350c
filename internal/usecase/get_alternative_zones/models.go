package get_alternative_zones

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса альтернативных зон
type Request struct {
	FacilityID       string
	ZoneID           string    // Предпочтительная зона
	Date             time.Time // Дата (без времени)
	TimeSlot         string    // "HH:MM-HH:MM"
	RequiredCapacity *int      // nil - вместимость предпочтительной зоны
}

// Response модель ответа, зоны отсортированы по близости вместимости
type Response struct {
	PreferredZone    domain.Zone
	RequiredCapacity int
	Alternatives     []domain.Zone
}
