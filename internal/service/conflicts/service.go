package conflicts

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// Service проверка конфликтов бронирований
// Не хранит состояния между вызовами и безопасен для конкурентного использования
type Service struct {
	expander OccurrenceExpander
	logger   Logger

	// Horizon граница развертки существующих повторяющихся бронирований
	// от их собственного начала, когда у запроса нет даты окончания.
	// Граница всегда продлевается до конца последнего предлагаемого интервала.
	Horizon time.Duration

	// MaxOccurrences предел развертки предлагаемого бронирования
	MaxOccurrences int
}

// NewService создает новый экземпляр сервиса проверки конфликтов
func NewService(expander OccurrenceExpander, logger Logger) *Service {
	return &Service{
		expander:       expander,
		logger:         logger,
		Horizon:        domain.DefaultRecurrenceHorizon,
		MaxOccurrences: domain.MaxOccurrences,
	}
}

// CheckBookingConflict проверяет предлагаемое бронирование против существующих
//
// Обе стороны разворачиваются в наборы интервалов и сравниваются попарно,
// стоимость O(предлагаемые × существующие) на объект. Это квадратичная оценка:
// размер наборов ограничен горизонтом развертки, а на стороне вызова - MaxOccurrences.
//
// Некорректный ввод не приводит к ошибке: результат "нет конфликта" и запись в лог.
func (s *Service) CheckBookingConflict(req Request, existing []domain.BookingEntry) domain.ConflictCheckResult {
	// 1. Оставляем только активные бронирования целевого объекта
	candidates := make([]*domain.BookingEntry, 0, len(existing))
	for i := range existing {
		b := &existing[i]
		if b.FacilityID == req.FacilityID && b.IsActive() {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return domain.ConflictCheckResult{}
	}

	// 2. Разбираем предлагаемый интервал
	slot, err := timeslots.ParseTimeSlot(req.StartDate, req.TimeSlot)
	if err != nil {
		s.logger.Warn("CheckBookingConflict: cannot parse time slot %q for facility=%s: %v", req.TimeSlot, req.FacilityID, err)
		return domain.ConflictCheckResult{}
	}

	// 3. Набор предлагаемых интервалов
	limit := s.maxOccurrences()
	proposed := s.proposedOccurrences(req, slot, limit+1)
	if len(proposed) == 0 {
		return domain.ConflictCheckResult{}
	}
	if len(proposed) > limit {
		s.logger.Warn("CheckBookingConflict: facility=%s expands beyond %d occurrences, checking the first %d", req.FacilityID, limit, limit)
		proposed = proposed[:limit]
	}
	proposedEnd := proposed[len(proposed)-1].End

	zones := newZoneIndex(req.Zones)

	for _, b := range candidates {
		conflictType, relevant := zones.classify(req.ZoneID, b.ZoneID)
		if !relevant {
			continue
		}

		// 4. Набор интервалов существующего бронирования
		occurrences := s.expander.ExpandBooking(b, s.existingBound(req, b, proposedEnd))

		// 5-6. Попарная проверка, выход на первом бронировании с пересечением
		if dates := overlappingStarts(proposed, occurrences); len(dates) > 0 {
			return domain.ConflictCheckResult{
				HasConflict:          true,
				ConflictingDates:     dates,
				ConflictType:         conflictType,
				ConflictingBookingID: b.ID,
			}
		}
	}

	// 7. Пересечений нет
	return domain.ConflictCheckResult{}
}

// ProposedOccurrences разворачивает предлагаемое бронирование без проверки конфликтов,
// не более limit интервалов (limit <= 0 без лимита)
// Вызывающий код передает свой предел + 1, чтобы отличить превышение от точного попадания
func (s *Service) ProposedOccurrences(req Request, limit int) []domain.TimeSlot {
	slot, err := timeslots.ParseTimeSlot(req.StartDate, req.TimeSlot)
	if err != nil {
		return []domain.TimeSlot{}
	}
	return s.proposedOccurrences(req, slot, limit)
}

func (s *Service) proposedOccurrences(req Request, slot domain.TimeSlot, limit int) []domain.TimeSlot {
	switch req.Mode {
	case domain.BookingModeDateRange:
		endDate := req.StartDate
		if req.EndDate != nil {
			endDate = *req.EndDate
		}
		slots, err := timeslots.DailySlots(req.StartDate, endDate, req.TimeSlot, limit)
		if err != nil {
			s.logger.Warn("CheckBookingConflict: invalid date range for facility=%s: %v", req.FacilityID, err)
			return nil
		}
		return slots

	case domain.BookingModeRecurring:
		// Без EndDate развертку ограничивают COUNT/UNTIL правила
		var until time.Time
		if req.EndDate != nil {
			until = timeslots.EndOfDay(*req.EndDate)
		}
		return s.expander.GenerateOccurrences(req.StartDate, req.TimeSlot, req.RecurrenceRule, until, limit)

	case domain.BookingModeOneTime:
		return []domain.TimeSlot{slot}

	default:
		s.logger.Warn("CheckBookingConflict: unknown booking mode %q, treating as one-time", req.Mode)
		return []domain.TimeSlot{slot}
	}
}

// existingBound граница развертки существующего бронирования:
// конец дня EndDate запроса, иначе собственное начало + Horizon.
// Граница не раньше proposedEnd, иначе поздние предлагаемые интервалы не проверяются.
func (s *Service) existingBound(req Request, b *domain.BookingEntry, proposedEnd time.Time) time.Time {
	var bound time.Time
	if req.EndDate != nil {
		bound = timeslots.EndOfDay(*req.EndDate)
	} else {
		horizon := s.Horizon
		if horizon <= 0 {
			horizon = domain.DefaultRecurrenceHorizon
		}
		bound = b.StartDateTime.Add(horizon)
	}

	if proposedEnd.After(bound) {
		return proposedEnd
	}
	return bound
}

func (s *Service) maxOccurrences() int {
	if s.MaxOccurrences <= 0 {
		return domain.MaxOccurrences
	}
	return s.MaxOccurrences
}

// overlappingStarts возвращает начала существующих интервалов,
// пересекающихся хотя бы с одним предлагаемым
func overlappingStarts(proposed, existing []domain.TimeSlot) []time.Time {
	var dates []time.Time
	for _, e := range existing {
		for _, p := range proposed {
			if p.Overlaps(e) {
				dates = append(dates, e.Start)
				break
			}
		}
	}
	return dates
}
