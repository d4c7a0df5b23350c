package preview_recurrence

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	previewRecurrence "github.com/m04kA/SMC-FacilityBooking/internal/usecase/preview_recurrence"
)

// PreviewRecurrenceRequest HTTP request model
// Либо rule, либо frequency с остальными полями
type PreviewRecurrenceRequest struct {
	StartDate string  `json:"startDate" validate:"required,date"`
	TimeSlot  string  `json:"timeSlot" validate:"required,timeslot"`
	Rule      string  `json:"rule,omitempty" validate:"required_without=Frequency"`
	Frequency string  `json:"frequency,omitempty" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY daily weekly monthly"`
	Interval  int     `json:"interval,omitempty" validate:"gte=0"`
	Weekdays  []int   `json:"weekdays,omitempty" validate:"dive,gte=0,lte=6"` // 0 = воскресенье
	Count     *int    `json:"count,omitempty" validate:"omitempty,gte=1"`
	Until     *string `json:"until,omitempty" validate:"omitempty,date"`
}

// OccurrenceResponse одно повторение
type OccurrenceResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PreviewRecurrenceResponse HTTP response model
type PreviewRecurrenceResponse struct {
	Rule        string               `json:"rule"`
	Count       int                  `json:"count"`
	Truncated   bool                 `json:"truncated"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// until включает весь указанный день
func (r *PreviewRecurrenceRequest) ToUseCaseRequest(loc *time.Location) (*previewRecurrence.Request, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, r.StartDate, loc)
	if err != nil {
		return nil, err
	}

	req := &previewRecurrence.Request{
		StartDate: startDate,
		TimeSlot:  r.TimeSlot,
		Rule:      r.Rule,
		Frequency: timeslots.Frequency(strings.ToUpper(r.Frequency)),
		Interval:  r.Interval,
		Count:     r.Count,
	}

	for _, wd := range r.Weekdays {
		req.Weekdays = append(req.Weekdays, time.Weekday(wd))
	}

	if r.Until != nil {
		d, err := time.ParseInLocation(domain.DateFormat, *r.Until, loc)
		if err != nil {
			return nil, err
		}
		until := timeslots.EndOfDay(d).Truncate(time.Second)
		req.Until = &until
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewRecurrence.Response) *PreviewRecurrenceResponse {
	occurrences := make([]OccurrenceResponse, 0, len(resp.Occurrences))
	for _, o := range resp.Occurrences {
		occurrences = append(occurrences, OccurrenceResponse{
			Start: o.Start.Format(time.RFC3339),
			End:   o.End.Format(time.RFC3339),
		})
	}

	return &PreviewRecurrenceResponse{
		Rule:        resp.Rule,
		Count:       len(occurrences),
		Truncated:   resp.Truncated,
		Occurrences: occurrences,
	}
}
