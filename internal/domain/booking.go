package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// BookingMode describes how a proposed booking is laid out in time
type BookingMode string

const (
	BookingModeOneTime   BookingMode = "one-time"
	BookingModeDateRange BookingMode = "date-range"
	BookingModeRecurring BookingMode = "recurring"
)

// BookingType classifies booking duration/recurrence pattern
// (engangs = one-time, fastlan = fixed recurring slot, rammetid = recurring framework time, strotimer = drop-in)
type BookingType string

const (
	BookingTypeEngangs   BookingType = "engangs"
	BookingTypeFastlan   BookingType = "fastlan"
	BookingTypeRammetid  BookingType = "rammetid"
	BookingTypeStrotimer BookingType = "strotimer"
)

// BookingEntry is an existing booking as seen by the conflict checker.
// The persistence layer owns its lifecycle; the core only reads it.
type BookingEntry struct {
	ID             string
	FacilityID     string
	ZoneID         string
	StartDateTime  time.Time
	EndDateTime    time.Time
	RecurrenceRule *string // RRULE text, nil for a single booking
	Status         BookingStatus
}

// IsActive returns true if the booking still occupies its time.
// Bookings without a status are treated as active.
func (b *BookingEntry) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRejected
}

// IsRecurring returns true if the booking carries a recurrence rule
func (b *BookingEntry) IsRecurring() bool {
	return b.RecurrenceRule != nil && *b.RecurrenceRule != ""
}

// Slot returns the stored start/end as a TimeSlot
func (b *BookingEntry) Slot() TimeSlot {
	return TimeSlot{Start: b.StartDateTime, End: b.EndDateTime}
}

// BookingsFilter filter for reading facility bookings
type BookingsFilter struct {
	FacilityID string     // Required
	From       *time.Time // Lower bound for non-recurring bookings (optional)
	To         *time.Time // Upper bound for non-recurring bookings (optional)
	ZoneIDs    []string   // Restrict to zones (optional)
}
