package search_facilities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilityfilter"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fakeFacilities struct {
	facilities []domain.Facility
	err        error
}

func (f *fakeFacilities) List(context.Context) ([]domain.Facility, error) {
	return f.facilities, f.err
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeFacilities{facilities: []domain.Facility{
		{ID: "1", Name: "Idrettshall", FacilityType: "sports-hall", Capacity: 200, IsActive: true},
		{ID: "2", Name: "Møterom", FacilityType: "meeting-room", Capacity: 12, IsActive: true},
		{ID: "3", Name: "Gammel hall", FacilityType: "sports-hall", Capacity: 150, IsActive: false},
	}}

	resp, err := NewUseCase(repo, testLogger{}).Execute(context.Background(), &Request{
		Filters: []facilityfilter.Filter{facilityfilter.Type{Types: []string{"sports-hall"}}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Facilities, 1)
	assert.Equal(t, "1", resp.Facilities[0].ID)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	_, err := NewUseCase(&fakeFacilities{err: errors.New("db down")}, testLogger{}).
		Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInternal)
}
