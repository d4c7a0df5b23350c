package domain

import "time"

// DefaultRecurrenceHorizon bounds expansion of an existing recurring booking
// when the proposed request gives no end date. It only makes expansion finite.
const DefaultRecurrenceHorizon = 365 * 24 * time.Hour

// MaxOccurrences is the default caller-side guard on proposed expansion size
const MaxOccurrences = 1000

// Pricing defaults
const (
	DefaultBasePricePerHour = 500.0
	VATRate                 = 0.25
)

// Time-of-day category boundaries (hour of slot start, local wall clock)
const (
	DayStartHour     = 6
	EveningStartHour = 17
	NightStartHour   = 22
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// InactiveStatuses bookings in these statuses never cause conflicts
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}
