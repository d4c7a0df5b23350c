package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// Service доступность зон и подбор альтернатив
type Service struct {
	expander OccurrenceExpander
	logger   Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(expander OccurrenceExpander, logger Logger) *Service {
	return &Service{
		expander: expander,
		logger:   logger,
	}
}

// GetZoneAvailabilityStatus возвращает статус каждой зоны на интервал slot в день date
// Зона доступна, если она активна и не конфликтует ни с одним бронированием,
// пересекающимся с интервалом. Записи возвращаются для всех зон, включая недоступные.
func (s *Service) GetZoneAvailabilityStatus(zones []domain.Zone, bookings []domain.BookingEntry, date time.Time, slot string) ([]ZoneStatus, error) {
	target, err := timeslots.ParseTimeSlot(date, slot)
	if err != nil {
		s.logger.Warn("GetZoneAvailabilityStatus: cannot parse time slot %q: %v", slot, err)
		return nil, err
	}

	overlapping := s.overlappingBookings(bookings, target)

	index := make(map[string]*domain.Zone, len(zones))
	for i := range zones {
		index[zones[i].ID] = &zones[i]
	}

	statuses := make([]ZoneStatus, 0, len(zones))
	for i := range zones {
		zone := &zones[i]

		var found []domain.ZoneConflict
		for _, b := range overlapping {
			if b.FacilityID != zone.FacilityID {
				continue
			}
			for _, t := range conflictTypes(zone, b, index) {
				found = append(found, domain.ZoneConflict{BookingID: b.ID, ZoneID: b.ZoneID, Type: t})
			}
		}

		statuses = append(statuses, ZoneStatus{
			Zone:        *zone,
			IsAvailable: zone.IsActive && len(found) == 0,
			Conflicts:   found,
		})
	}

	return statuses, nil
}

// GetAlternativeZones подбирает зоны вместо предпочтительной:
// не предпочтительная, активная, доступная и вместимостью не меньше requiredCapacity.
// Результат отсортирован по близости вместимости к requiredCapacity.
func (s *Service) GetAlternativeZones(
	zones []domain.Zone,
	bookings []domain.BookingEntry,
	preferredZoneID string,
	date time.Time,
	slot string,
	requiredCapacity int,
) ([]domain.Zone, error) {
	statuses, err := s.GetZoneAvailabilityStatus(zones, bookings, date, slot)
	if err != nil {
		return nil, err
	}

	alternatives := make([]domain.Zone, 0, len(statuses))
	for _, st := range statuses {
		if st.Zone.ID == preferredZoneID || !st.IsAvailable || !st.Zone.IsActive {
			continue
		}
		if st.Zone.Capacity < requiredCapacity {
			continue
		}
		alternatives = append(alternatives, st.Zone)
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Capacity-requiredCapacity < alternatives[j].Capacity-requiredCapacity
	})

	return alternatives, nil
}

// overlappingBookings активные бронирования, хотя бы одно повторение которых пересекает target
func (s *Service) overlappingBookings(bookings []domain.BookingEntry, target domain.TimeSlot) []*domain.BookingEntry {
	until := timeslots.EndOfDay(target.Start)

	var result []*domain.BookingEntry
	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() || !b.StartDateTime.Before(target.End) {
			continue
		}
		for _, occ := range s.expander.ExpandBooking(b, until) {
			if occ.Overlaps(target) {
				result = append(result, b)
				break
			}
		}
	}
	return result
}

// conflictTypes типы конфликтов зоны с бронированием
// Бронирование без зоны занимает весь объект
func conflictTypes(zone *domain.Zone, b *domain.BookingEntry, index map[string]*domain.Zone) []domain.ConflictType {
	if b.ZoneID == "" {
		return []domain.ConflictType{domain.ConflictTypeWholeFacility}
	}

	existingZone, ok := index[b.ZoneID]
	if !ok {
		if b.ZoneID == zone.ID {
			return []domain.ConflictType{domain.ConflictTypeZone}
		}
		return nil
	}

	return conflicts.ZoneConflicts(zone, existingZone)
}
