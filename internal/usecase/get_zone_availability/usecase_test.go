package get_zone_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fakeBookings struct {
	bookings []domain.BookingEntry
	err      error
}

func (f *fakeBookings) GetByFacility(context.Context, domain.BookingsFilter) ([]domain.BookingEntry, error) {
	return f.bookings, f.err
}

type fakeZones struct{ zones []domain.Zone }

func (f *fakeZones) GetByFacility(context.Context, string) ([]domain.Zone, error) {
	return f.zones, nil
}

type fakeFacilities struct{ err error }

func (f *fakeFacilities) GetByID(_ context.Context, id string) (*domain.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Facility{ID: id}, nil
}

type fakeTx struct{}

func (fakeTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func zones() []domain.Zone {
	return []domain.Zone{
		{ID: "main", FacilityID: "f-1", Capacity: 300, IsMainZone: true, IsActive: true},
		{ID: "a", FacilityID: "f-1", Capacity: 100, ParentZoneID: ptr.Ptr("main"), IsActive: true},
		{ID: "b", FacilityID: "f-1", Capacity: 100, ParentZoneID: ptr.Ptr("main"), IsActive: true},
	}
}

func newUseCase(bookings *fakeBookings, facilities *fakeFacilities) *UseCase {
	svc := availability.NewService(timeslots.NewService(testLogger{}), testLogger{})
	return NewUseCase(bookings, &fakeZones{zones: zones()}, facilities, svc, fakeTx{}, testLogger{})
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{bookings: []domain.BookingEntry{{
		ID:            "b-1",
		FacilityID:    "f-1",
		ZoneID:        "a",
		StartDateTime: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 10, 16, 0, 0, 0, time.UTC),
		Status:        domain.StatusConfirmed,
	}}}
	uc := newUseCase(bookings, &fakeFacilities{})

	resp, err := uc.Execute(context.Background(), &Request{FacilityID: "f-1", Date: date, TimeSlot: "15:00-17:00"})
	require.NoError(t, err)
	require.Len(t, resp.Zones, 3)

	byID := map[string]bool{}
	for _, st := range resp.Zones {
		byID[st.Zone.ID] = st.IsAvailable
	}
	assert.Equal(t, map[string]bool{"main": false, "a": false, "b": true}, byID)
	assert.Equal(t, 1, resp.AvailableCount)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := newUseCase(&fakeBookings{}, &fakeFacilities{}).
		Execute(context.Background(), &Request{FacilityID: "f-1", Date: date, TimeSlot: "22:00-01:00"})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	_, err = newUseCase(&fakeBookings{}, &fakeFacilities{err: facilityRepo.ErrFacilityNotFound}).
		Execute(context.Background(), &Request{FacilityID: "f-x", Date: date, TimeSlot: "10:00-11:00"})
	assert.ErrorIs(t, err, ErrFacilityNotFound)

	_, err = newUseCase(&fakeBookings{err: errors.New("timeout")}, &fakeFacilities{}).
		Execute(context.Background(), &Request{FacilityID: "f-1", Date: date, TimeSlot: "10:00-11:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
