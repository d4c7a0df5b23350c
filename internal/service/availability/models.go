package availability

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// ZoneStatus доступность одной зоны на заданный интервал
type ZoneStatus struct {
	Zone        domain.Zone
	IsAvailable bool
	Conflicts   []domain.ZoneConflict // Пусто для доступной зоны
}
