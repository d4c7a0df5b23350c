package search_facilities

import (
	"context"

	searchFacilities "github.com/m04kA/SMC-FacilityBooking/internal/usecase/search_facilities"
)

type SearchFacilitiesUseCase interface {
	Execute(ctx context.Context, req *searchFacilities.Request) (*searchFacilities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
