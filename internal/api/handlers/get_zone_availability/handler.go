package get_zone_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getZoneAvailability "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_zone_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgMissingTimeSlot  = "временной интервал обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot  = "некорректный временной интервал, ожидается HH:MM-HH:MM"
	msgFacilityNotFound = "объект не найден"
)

type Handler struct {
	useCase  GetZoneAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetZoneAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/zones/availability
// Query params: date (required, YYYY-MM-DD), timeSlot (required, HH:MM-HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{id}/zones/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeSlot := query.Get("timeSlot")
	if timeSlot == "" {
		h.logger.Warn("GET /facilities/{id}/zones/availability - Missing time slot")
		handlers.RespondBadRequest(w, msgMissingTimeSlot)
		return
	}

	useCaseReq, err := ToUseCaseRequest(facilityID, dateStr, timeSlot, h.location)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/zones/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getZoneAvailability.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/zones/availability - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getZoneAvailability.ErrInvalidTimeSlot):
			h.logger.Warn("GET /facilities/{id}/zones/availability - Invalid time slot: %q", timeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("GET /facilities/{id}/zones/availability - Failed to get availability: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/zones/availability - Availability retrieved: facility_id=%s, zones=%d, available=%d",
		facilityID, len(result.Zones), result.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(useCaseReq, result))
}
