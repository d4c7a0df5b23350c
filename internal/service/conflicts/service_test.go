package conflicts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(timeslots.NewService(testLogger{}), testLogger{})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, zoneID string, start, end time.Time) domain.BookingEntry {
	return domain.BookingEntry{
		ID:            id,
		FacilityID:    "facility-1",
		ZoneID:        zoneID,
		StartDateTime: start,
		EndDateTime:   end,
		Status:        domain.StatusConfirmed,
	}
}

func at(d time.Time, hour int) time.Time {
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestCheckBookingConflict_NoExistingBookings(t *testing.T) {
	svc := newTestService()

	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  day(2024, 6, 10),
		TimeSlot:   "14:00-16:00",
		Mode:       domain.BookingModeOneTime,
	}, nil)

	assert.False(t, result.HasConflict)
}

func TestCheckBookingConflict_Overlap(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)
	existing := []domain.BookingEntry{booking("b-1", "zone-1", at(d, 14), at(d, 16))}

	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  d,
		TimeSlot:   "15:00-17:00",
		Mode:       domain.BookingModeOneTime,
	}, existing)

	assert.True(t, result.HasConflict)
	assert.Equal(t, "b-1", result.ConflictingBookingID)
	assert.Equal(t, domain.ConflictTypeZone, result.ConflictType)
	assert.Equal(t, []time.Time{at(d, 14)}, result.ConflictingDates)
}

func TestCheckBookingConflict_BackToBack(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)
	existing := []domain.BookingEntry{booking("b-1", "zone-1", at(d, 12), at(d, 14))}

	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  d,
		TimeSlot:   "14:00-16:00",
		Mode:       domain.BookingModeOneTime,
	}, existing)

	assert.False(t, result.HasConflict)
}

func TestCheckBookingConflict_IgnoresOtherFacilitiesAndInactive(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)

	other := booking("b-1", "zone-1", at(d, 14), at(d, 16))
	other.FacilityID = "facility-2"
	cancelled := booking("b-2", "zone-1", at(d, 14), at(d, 16))
	cancelled.Status = domain.StatusCancelled

	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  d,
		TimeSlot:   "14:00-16:00",
		Mode:       domain.BookingModeOneTime,
	}, []domain.BookingEntry{other, cancelled})

	assert.False(t, result.HasConflict)
}

func TestCheckBookingConflict_MalformedSlotIsPermissive(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)
	existing := []domain.BookingEntry{booking("b-1", "zone-1", at(d, 14), at(d, 16))}

	for _, slot := range []string{"garbage", "23:00-01:00"} {
		result := svc.CheckBookingConflict(Request{
			FacilityID: "facility-1",
			StartDate:  d,
			TimeSlot:   slot,
			Mode:       domain.BookingModeOneTime,
		}, existing)
		assert.False(t, result.HasConflict, slot)
	}
}

func TestCheckBookingConflict_DateRange(t *testing.T) {
	svc := newTestService()
	conflictDay := day(2024, 6, 12)
	existing := []domain.BookingEntry{booking("b-1", "zone-1", at(conflictDay, 9), at(conflictDay, 10))}

	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  day(2024, 6, 10),
		EndDate:    ptr.Ptr(day(2024, 6, 14)),
		TimeSlot:   "08:30-09:30",
		Mode:       domain.BookingModeDateRange,
	}, existing)

	require.True(t, result.HasConflict)
	assert.Equal(t, []time.Time{at(conflictDay, 9)}, result.ConflictingDates)

	result = svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  day(2024, 6, 13),
		EndDate:    ptr.Ptr(day(2024, 6, 14)),
		TimeSlot:   "08:30-09:30",
		Mode:       domain.BookingModeDateRange,
	}, existing)

	assert.False(t, result.HasConflict)
}

func TestCheckBookingConflict_RecurringAgainstRecurring(t *testing.T) {
	svc := newTestService()

	// Существующее: каждый вторник 18:00-20:00 с 4 июня
	existing := booking("b-1", "zone-1", time.Date(2024, 6, 4, 18, 0, 0, 0, time.UTC), time.Date(2024, 6, 4, 20, 0, 0, 0, time.UTC))
	existing.RecurrenceRule = ptr.Ptr("FREQ=WEEKLY;BYDAY=TU;COUNT=52")

	// Предлагаемое: по понедельникам и вторникам 19:00-21:00 с 1 июля
	result := svc.CheckBookingConflict(Request{
		FacilityID:     "facility-1",
		ZoneID:         "zone-1",
		StartDate:      day(2024, 7, 1),
		EndDate:        ptr.Ptr(day(2024, 7, 14)),
		TimeSlot:       "19:00-21:00",
		Mode:           domain.BookingModeRecurring,
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO,TU;COUNT=10",
	}, []domain.BookingEntry{existing})

	require.True(t, result.HasConflict)
	assert.Equal(t, []time.Time{
		time.Date(2024, 7, 2, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 9, 18, 0, 0, 0, time.UTC),
	}, result.ConflictingDates)

	// Только понедельники - пересечений нет
	result = svc.CheckBookingConflict(Request{
		FacilityID:     "facility-1",
		ZoneID:         "zone-1",
		StartDate:      day(2024, 7, 1),
		EndDate:        ptr.Ptr(day(2024, 7, 31)),
		TimeSlot:       "19:00-21:00",
		Mode:           domain.BookingModeRecurring,
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=MO;COUNT=5",
	}, []domain.BookingEntry{existing})

	assert.False(t, result.HasConflict)
}

func TestCheckBookingConflict_ProposalBeyondHorizon(t *testing.T) {
	svc := newTestService()
	svc.Horizon = 30 * 24 * time.Hour

	existing := booking("b-1", "zone-1", time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC))
	existing.RecurrenceRule = ptr.Ptr("FREQ=DAILY;UNTIL=20301231T000000Z")

	// Предложение далеко за горизонтом все равно видит повторения существующего
	result := svc.CheckBookingConflict(Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  day(2026, 8, 1),
		TimeSlot:   "10:00-11:00",
		Mode:       domain.BookingModeOneTime,
	}, []domain.BookingEntry{existing})

	require.True(t, result.HasConflict)
	assert.Equal(t, []time.Time{time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}, result.ConflictingDates)
}

func TestCheckBookingConflict_RecurringCountWithoutEndDate(t *testing.T) {
	svc := newTestService()
	existing := booking("b-1", "zone-1", time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC), time.Date(2025, 11, 10, 16, 0, 0, 0, time.UTC))

	req := Request{
		FacilityID:     "facility-1",
		ZoneID:         "zone-1",
		StartDate:      day(2024, 6, 10),
		TimeSlot:       "14:00-16:00",
		Mode:           domain.BookingModeRecurring,
		RecurrenceRule: "FREQ=MONTHLY;COUNT=24",
	}

	assert.Len(t, svc.ProposedOccurrences(req, 0), 24)

	result := svc.CheckBookingConflict(req, []domain.BookingEntry{existing})
	require.True(t, result.HasConflict)
	assert.Equal(t, "b-1", result.ConflictingBookingID)
	assert.Equal(t, []time.Time{time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC)}, result.ConflictingDates)
}

func TestProposedOccurrences_Limit(t *testing.T) {
	svc := newTestService()

	dateRange := Request{
		FacilityID: "facility-1",
		StartDate:  day(2024, 1, 1),
		EndDate:    ptr.Ptr(day(9999, 12, 31)),
		TimeSlot:   "08:00-09:00",
		Mode:       domain.BookingModeDateRange,
	}
	assert.Len(t, svc.ProposedOccurrences(dateRange, 1001), 1001)

	recurring := Request{
		FacilityID:     "facility-1",
		StartDate:      day(2024, 1, 1),
		TimeSlot:       "08:00-09:00",
		Mode:           domain.BookingModeRecurring,
		RecurrenceRule: "FREQ=DAILY;COUNT=100000",
	}
	assert.Len(t, svc.ProposedOccurrences(recurring, 1001), 1001)
}

func TestCheckBookingConflict_ZoneHierarchy(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)

	zones := []domain.Zone{
		{ID: "main", FacilityID: "facility-1", IsMainZone: true, IsActive: true},
		{ID: "half-a", FacilityID: "facility-1", IsActive: true, ParentZoneID: ptr.Ptr("main"), ConflictingZoneIDs: []string{"stage"}},
		{ID: "half-b", FacilityID: "facility-1", IsActive: true, ParentZoneID: ptr.Ptr("main")},
		{ID: "stage", FacilityID: "facility-1", IsActive: true},
	}

	tests := []struct {
		name         string
		newZone      string
		existingZone string
		wantConflict bool
		wantType     domain.ConflictType
	}{
		{name: "siblings do not conflict", newZone: "half-a", existingZone: "half-b", wantConflict: false},
		{name: "same zone", newZone: "half-b", existingZone: "half-b", wantConflict: true, wantType: domain.ConflictTypeZone},
		{name: "main zone blocks sub-zone", newZone: "half-a", existingZone: "main", wantConflict: true, wantType: domain.ConflictTypeWholeFacility},
		{name: "sub-zone blocks main zone", newZone: "main", existingZone: "half-b", wantConflict: true, wantType: domain.ConflictTypeWholeFacility},
		{name: "explicit exclusion", newZone: "stage", existingZone: "half-a", wantConflict: true, wantType: domain.ConflictTypeSubZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := []domain.BookingEntry{booking("b-1", tt.existingZone, at(d, 14), at(d, 16))}
			result := svc.CheckBookingConflict(Request{
				FacilityID: "facility-1",
				ZoneID:     tt.newZone,
				StartDate:  d,
				TimeSlot:   "15:00-16:00",
				Mode:       domain.BookingModeOneTime,
				Zones:      zones,
			}, existing)

			assert.Equal(t, tt.wantConflict, result.HasConflict)
			assert.Equal(t, tt.wantType, result.ConflictType)
		})
	}
}

func TestCheckBookingConflict_Idempotent(t *testing.T) {
	svc := newTestService()
	d := day(2024, 6, 10)
	existing := []domain.BookingEntry{
		booking("b-1", "zone-1", at(d, 8), at(d, 9)),
		booking("b-2", "zone-1", at(d, 14), at(d, 16)),
	}
	req := Request{
		FacilityID: "facility-1",
		ZoneID:     "zone-1",
		StartDate:  d,
		TimeSlot:   "15:00-17:00",
		Mode:       domain.BookingModeOneTime,
	}

	first := svc.CheckBookingConflict(req, existing)
	second := svc.CheckBookingConflict(req, existing)

	assert.Equal(t, first, second)
	assert.Equal(t, "b-2", first.ConflictingBookingID)
}

func TestZoneConflicts(t *testing.T) {
	main := &domain.Zone{ID: "main", FacilityID: "f", IsMainZone: true}
	a := &domain.Zone{ID: "a", FacilityID: "f", ConflictingZoneIDs: []string{"b"}}
	b := &domain.Zone{ID: "b", FacilityID: "f"}
	other := &domain.Zone{ID: "x", FacilityID: "g", IsMainZone: true}

	assert.Equal(t, []domain.ConflictType{domain.ConflictTypeWholeFacility, domain.ConflictTypeZone}, ZoneConflicts(main, main))
	assert.Equal(t, []domain.ConflictType{domain.ConflictTypeWholeFacility}, ZoneConflicts(a, main))
	// асимметрично сохраненное исключение все равно находится
	assert.Equal(t, []domain.ConflictType{domain.ConflictTypeSubZone}, ZoneConflicts(b, a))
	assert.Empty(t, ZoneConflicts(a, other))

	assert.Equal(t, domain.ConflictTypeWholeFacility, MostSevere(ZoneConflicts(main, main)))
	assert.Equal(t, domain.ConflictType(""), MostSevere(nil))
}
