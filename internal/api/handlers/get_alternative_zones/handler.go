package get_alternative_zones

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getAlternativeZones "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_alternative_zones"
)

const (
	msgMissingDate      = "дата обязательна"
	msgMissingTimeSlot  = "временной интервал обязателен"
	msgInvalidParams    = "некорректная дата или вместимость"
	msgInvalidTimeSlot  = "некорректный временной интервал, ожидается HH:MM-HH:MM"
	msgInvalidCapacity  = "вместимость не может быть отрицательной"
	msgFacilityNotFound = "объект не найден"
	msgZoneNotFound     = "зона не найдена"
)

type Handler struct {
	useCase  GetAlternativeZonesUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAlternativeZonesUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/zones/{zoneId}/alternatives
// Query params: date (required), timeSlot (required), capacity (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, zoneID := vars["facilityId"], vars["zoneId"]
	query := r.URL.Query()

	if query.Get("date") == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if query.Get("timeSlot") == "" {
		handlers.RespondBadRequest(w, msgMissingTimeSlot)
		return
	}

	useCaseReq, err := ToUseCaseRequest(facilityID, zoneID, query.Get("date"), query.Get("timeSlot"), query.Get("capacity"), h.location)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/zones/{id}/alternatives - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAlternativeZones.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/zones/{id}/alternatives - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAlternativeZones.ErrZoneNotFound):
			h.logger.Warn("GET /facilities/{id}/zones/{id}/alternatives - Zone not found: facility_id=%s, zone_id=%s", facilityID, zoneID)
			handlers.RespondNotFound(w, msgZoneNotFound)

		case errors.Is(err, getAlternativeZones.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, getAlternativeZones.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("GET /facilities/{id}/zones/{id}/alternatives - Failed to get alternatives: facility_id=%s, zone_id=%s, error=%v",
				facilityID, zoneID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/zones/{id}/alternatives - Alternatives retrieved: facility_id=%s, zone_id=%s, count=%d",
		facilityID, zoneID, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
