package search_facilities

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilityfilter"
	searchFacilities "github.com/m04kA/SMC-FacilityBooking/internal/usecase/search_facilities"
)

type Handler struct {
	useCase SearchFacilitiesUseCase
	logger  Logger
}

func NewHandler(useCase SearchFacilitiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities
// Query params: search, type, area, minCapacity, maxCapacity, minPrice, maxPrice, amenities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filters, err := facilityfilter.ParseFilters(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /facilities - Invalid filters: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &searchFacilities.Request{Filters: filters})
	if err != nil {
		h.logger.Error("GET /facilities - Failed to search facilities: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities - Facilities found: count=%d", len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
