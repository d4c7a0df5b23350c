package search_facilities

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilityfilter"
)

// UseCase use case для поиска объектов по фильтрам
type UseCase struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(facilityRepo FacilityRepository, logger Logger) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// Execute выполняет use case
// Фильтры применяются в памяти, неактивные объекты не возвращаются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	facilities, err := uc.facilityRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchFacilities: failed to list facilities: %v", err)
		return nil, fmt.Errorf("%w: failed to list facilities: %v", ErrInternal, err)
	}

	found := facilityfilter.Apply(facilities, req.Filters)

	uc.logger.Info("SearchFacilities: filters=%d, total=%d, found=%d", len(req.Filters), len(facilities), len(found))
	return &Response{Facilities: found}, nil
}
