package calculate_price

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// validateRequest проверяет запрос и возвращает число интервалов
func validateRequest(req *Request) (int, error) {
	if req.FacilityID == "" {
		return 0, fmt.Errorf("%w: facility id is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return 0, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if !req.ActorType.IsValid() {
		return 0, fmt.Errorf("%w: unknown actor type %q", ErrInvalidInput, req.ActorType)
	}

	switch req.PricingMode {
	case "", domain.PricingModeRuleBased, domain.PricingModeFlat:
	default:
		return 0, fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidInput, req.PricingMode)
	}

	if req.SlotCount < 0 {
		return 0, fmt.Errorf("%w: slot count must not be negative", ErrInvalidInput)
	}
	for _, s := range req.Services {
		if s.ID == "" || s.Quantity < 0 {
			return 0, fmt.Errorf("%w: invalid additional service %q", ErrInvalidInput, s.ID)
		}
	}

	if req.EndDate == nil {
		return max(req.SlotCount, 1), nil
	}
	if req.EndDate.Before(req.StartDate) {
		return 0, fmt.Errorf("%w: end date is before start date", ErrInvalidDateRange)
	}
	if req.SlotCount > 0 {
		return req.SlotCount, nil
	}

	// Один интервал на каждый день диапазона включительно
	days := timeslots.DayCount(req.StartDate, *req.EndDate)
	if days > domain.MaxOccurrences {
		return 0, fmt.Errorf("%w: range is longer than %d days", ErrInvalidDateRange, domain.MaxOccurrences)
	}
	return days, nil
}
