package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	checkConflict "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	ZoneID         string  `json:"zoneId,omitempty"`
	StartDate      string  `json:"startDate" validate:"required,date"`
	TimeSlot       string  `json:"timeSlot" validate:"required,timeslot"`
	Mode           string  `json:"mode,omitempty" validate:"omitempty,oneof=one-time date-range recurring"`
	EndDate        *string `json:"endDate,omitempty" validate:"omitempty,date"`
	RecurrenceRule string  `json:"recurrenceRule,omitempty" validate:"required_if=Mode recurring"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict          bool     `json:"hasConflict"`
	ConflictType         string   `json:"conflictType,omitempty"`
	ConflictingBookingID string   `json:"conflictingBookingId,omitempty"`
	ConflictingDates     []string `json:"conflictingDates"`
	ProposedOccurrences  int      `json:"proposedOccurrences"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Даты разбираются в часовом поясе объекта
func (r *CheckConflictRequest) ToUseCaseRequest(facilityID string, loc *time.Location) (*checkConflict.Request, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, r.StartDate, loc)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		d, err := time.ParseInLocation(domain.DateFormat, *r.EndDate, loc)
		if err != nil {
			return nil, err
		}
		endDate = &d
	}

	return &checkConflict.Request{
		FacilityID:     facilityID,
		ZoneID:         r.ZoneID,
		StartDate:      startDate,
		TimeSlot:       r.TimeSlot,
		Mode:           domain.BookingMode(r.Mode),
		EndDate:        endDate,
		RecurrenceRule: r.RecurrenceRule,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	dates := make([]string, 0, len(resp.ConflictingDates))
	for _, d := range resp.ConflictingDates {
		dates = append(dates, d.Format(time.RFC3339))
	}

	return &CheckConflictResponse{
		HasConflict:          resp.HasConflict,
		ConflictType:         string(resp.ConflictType),
		ConflictingBookingID: resp.ConflictingBookingID,
		ConflictingDates:     dates,
		ProposedOccurrences:  resp.ProposedOccurrences,
	}
}
