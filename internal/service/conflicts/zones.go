package conflicts

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// ZoneConflicts возвращает типы конфликтов между зоной новой брони и зоной существующей
// Проверки независимы, поэтому записей может быть несколько:
//   - любая из зон главная -> whole-facility-conflict
//   - явное исключение (в любую сторону) или прямая связь родитель/потомок -> sub-zone-conflict
//   - та же зона -> zone-conflict
//
// Зоны разных объектов не конфликтуют. Пересечение по времени проверяет вызывающий код.
func ZoneConflicts(newZone, existingZone *domain.Zone) []domain.ConflictType {
	if newZone == nil || existingZone == nil || newZone.FacilityID != existingZone.FacilityID {
		return nil
	}

	var result []domain.ConflictType

	if newZone.IsMainZone || existingZone.IsMainZone {
		result = append(result, domain.ConflictTypeWholeFacility)
	}

	// Список исключений должен быть симметричным, но проверяем обе стороны
	if newZone.ConflictsWith(existingZone.ID) || existingZone.ConflictsWith(newZone.ID) ||
		newZone.IsChildOf(existingZone.ID) || existingZone.IsChildOf(newZone.ID) {
		result = append(result, domain.ConflictTypeSubZone)
	}

	if newZone.ID == existingZone.ID {
		result = append(result, domain.ConflictTypeZone)
	}

	return result
}

// MostSevere выбирает самый серьезный тип конфликта
// Пустой список дает пустую строку
func MostSevere(types []domain.ConflictType) domain.ConflictType {
	var worst domain.ConflictType
	for _, t := range types {
		if t.Severity() > worst.Severity() {
			worst = t
		}
	}
	return worst
}

// zoneIndex индекс зон объекта по ID
type zoneIndex map[string]*domain.Zone

func newZoneIndex(zones []domain.Zone) zoneIndex {
	if len(zones) == 0 {
		return nil
	}
	idx := make(zoneIndex, len(zones))
	for i := range zones {
		idx[zones[i].ID] = &zones[i]
	}
	return idx
}

// classify определяет тип конфликта пары зон
// ok=false означает, что зоны не мешают друг другу даже при пересечении по времени
func (idx zoneIndex) classify(newZoneID, existingZoneID string) (domain.ConflictType, bool) {
	newZone, okNew := idx[newZoneID]
	existingZone, okExisting := idx[existingZoneID]

	if newZoneID == "" || !okNew || !okExisting {
		// Без сведений о зонах любое пересечение на объекте считается конфликтом
		if newZoneID != "" && newZoneID == existingZoneID {
			return domain.ConflictTypeZone, true
		}
		return domain.ConflictTypeWholeFacility, true
	}

	types := ZoneConflicts(newZone, existingZone)
	if len(types) == 0 {
		return "", false
	}
	return MostSevere(types), true
}
