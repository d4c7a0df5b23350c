package get_alternative_zones

import (
	"context"

	getAlternativeZones "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_alternative_zones"
)

type GetAlternativeZonesUseCase interface {
	Execute(ctx context.Context, req *getAlternativeZones.Request) (*getAlternativeZones.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
