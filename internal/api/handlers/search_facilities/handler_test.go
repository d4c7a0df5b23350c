package search_facilities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilityfilter"
	searchFacilities "github.com/m04kA/SMC-FacilityBooking/internal/usecase/search_facilities"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	req  *searchFacilities.Request
	resp *searchFacilities.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *searchFacilities.Request) (*searchFacilities.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &searchFacilities.Response{Facilities: []domain.Facility{
		{ID: "1", Name: "Idrettshall", FacilityType: "sports-hall", Capacity: 200},
	}}}

	rec := httptest.NewRecorder()
	NewHandler(uc, testLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities?type=sports-hall&minCapacity=100", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.req.Filters, 2)
	assert.Equal(t, facilityfilter.KindType, uc.req.Filters[0].Kind())

	var body SearchFacilitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, []string{}, body.Facilities[0].Amenities)
}

func TestHandler_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, testLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities?minPrice=cheap", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeUseCase{err: errors.New("db down")}, testLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/facilities", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
