package get_zone_availability

import (
	"context"

	getZoneAvailability "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_zone_availability"
)

type GetZoneAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getZoneAvailability.Request) (*getZoneAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
