package check_conflict

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// validateRequest проверяет запрос до обращения к хранилищу
func validateRequest(req *Request) error {
	if req.FacilityID == "" {
		return fmt.Errorf("%w: facility id is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if _, err := timeslots.ParseTimeSlot(req.StartDate, req.TimeSlot); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	switch req.Mode {
	case "", domain.BookingModeOneTime:
	case domain.BookingModeDateRange:
		if req.EndDate == nil {
			return fmt.Errorf("%w: end date is required for date-range", ErrInvalidDateRange)
		}
		if req.EndDate.Before(req.StartDate) {
			return fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
		}
	case domain.BookingModeRecurring:
		if _, err := timeslots.ParseRecurrenceRule(req.RecurrenceRule); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
		}
		if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
			return fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
		}
	default:
		return fmt.Errorf("%w: unknown booking mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}

// findZone ищет зону объекта по ID
func findZone(zones []domain.Zone, zoneID string) (*domain.Zone, bool) {
	for i := range zones {
		if zones[i].ID == zoneID {
			return &zones[i], true
		}
	}
	return nil, false
}
