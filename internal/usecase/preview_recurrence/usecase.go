package preview_recurrence

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// UseCase use case для предпросмотра повторяющегося бронирования
type UseCase struct {
	generator      OccurrenceGenerator
	logger         Logger
	maxOccurrences int
}

// NewUseCase создает новый экземпляр use case
// maxOccurrences <= 0 означает значение по умолчанию domain.MaxOccurrences
func NewUseCase(generator OccurrenceGenerator, logger Logger, maxOccurrences int) *UseCase {
	if maxOccurrences <= 0 {
		maxOccurrences = domain.MaxOccurrences
	}
	return &UseCase{
		generator:      generator,
		logger:         logger,
		maxOccurrences: maxOccurrences,
	}
}

// Execute собирает каноническое правило и разворачивает его
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Интервал
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if _, err := timeslots.ParseTimeSlot(req.StartDate, req.TimeSlot); err != nil {
		uc.logger.Warn("PreviewRecurrence: invalid time slot %q: %v", req.TimeSlot, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 2. Правило: строка или части
	recurrence, err := parseRequestRule(req)
	if err != nil {
		uc.logger.Warn("PreviewRecurrence: invalid rule: %v", err)
		return nil, err
	}
	rule := recurrence.String()

	// 3. Развертку ограничивают COUNT/UNTIL правила и предел + 1 для признака обрезки
	var until time.Time
	if recurrence.Until != nil {
		until = *recurrence.Until
	}
	occurrences := uc.generator.GenerateOccurrences(req.StartDate, req.TimeSlot, rule, until, uc.maxOccurrences+1)

	resp := &Response{Rule: rule, Occurrences: occurrences}
	if len(occurrences) > uc.maxOccurrences {
		resp.Occurrences = occurrences[:uc.maxOccurrences]
		resp.Truncated = true
	}

	uc.logger.Info("PreviewRecurrence: rule=%s, occurrences=%d, truncated=%t", rule, len(resp.Occurrences), resp.Truncated)
	return resp, nil
}

// parseRequestRule разбирает правило из строки или собирает его из частей
func parseRequestRule(req *Request) (timeslots.Recurrence, error) {
	rule := req.Rule
	if rule == "" {
		if req.Interval < 0 {
			return timeslots.Recurrence{}, fmt.Errorf("%w: interval must not be negative", ErrInvalidInput)
		}
		for _, wd := range req.Weekdays {
			if wd < time.Sunday || wd > time.Saturday {
				return timeslots.Recurrence{}, fmt.Errorf("%w: weekday %d out of range", ErrInvalidInput, wd)
			}
		}
		rule = timeslots.GenerateRecurrenceRule(req.Frequency, req.Interval, req.Weekdays, req.Count, req.Until)
	}

	recurrence, err := timeslots.ParseRecurrenceRule(rule)
	if err != nil {
		return timeslots.Recurrence{}, fmt.Errorf("%w: %v", ErrInvalidRecurrenceRule, err)
	}
	return recurrence, nil
}
