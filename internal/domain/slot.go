package domain

import "time"

// TimeSlot is a concrete half-open interval [Start, End).
// Invariant: Start < End.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Back-to-back slots sharing a boundary do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Duration returns the slot length
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// IsValid returns true if Start < End
func (s TimeSlot) IsValid() bool {
	return s.Start.Before(s.End)
}

// ConflictType classifies why two bookings are incompatible
type ConflictType string

const (
	ConflictTypeZone          ConflictType = "zone-conflict"
	ConflictTypeWholeFacility ConflictType = "whole-facility-conflict"
	ConflictTypeSubZone       ConflictType = "sub-zone-conflict"
)

// Severity orders conflict types for display: whole facility > sub-zone > zone
func (c ConflictType) Severity() int {
	switch c {
	case ConflictTypeWholeFacility:
		return 3
	case ConflictTypeSubZone:
		return 2
	case ConflictTypeZone:
		return 1
	default:
		return 0
	}
}

// ConflictCheckResult is the outcome of a booking conflict check
type ConflictCheckResult struct {
	HasConflict          bool
	ConflictingDates     []time.Time // Occurrence starts of the conflicting existing booking
	ConflictType         ConflictType
	ConflictingBookingID string
}

// ZoneConflict is one conflict record from the zone-hierarchy pass
type ZoneConflict struct {
	BookingID string
	ZoneID    string
	Type      ConflictType
}
