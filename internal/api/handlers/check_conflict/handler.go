package check_conflict

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-FacilityBooking/pkg/validator"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "ошибка валидации запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFacilityNotFound     = "объект не найден"
	msgZoneNotFound         = "зона не найдена"
	msgInvalidTimeSlot      = "некорректный временной интервал"
	msgInvalidDateRange     = "дата окончания раньше даты начала"
	msgInvalidRecurrence    = "некорректное правило повторения"
	msgTooManyOccurrences   = "слишком много повторений в бронировании"
	msgInvalidConflictInput = "некорректный запрос проверки конфликта"
)

type Handler struct {
	useCase  CheckConflictUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CheckConflictUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/facilities/{facilityId}/conflicts/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/{id}/conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		h.logger.Warn("POST /facilities/{id}/conflicts/check - Validation failed: facility_id=%s, fields=%v", facilityID, fields)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(facilityID, h.location)
	if err != nil {
		h.logger.Warn("POST /facilities/{id}/conflicts/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrFacilityNotFound):
			h.logger.Warn("POST /facilities/{id}/conflicts/check - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, checkConflict.ErrZoneNotFound):
			h.logger.Warn("POST /facilities/{id}/conflicts/check - Zone not found: facility_id=%s, zone_id=%s", facilityID, req.ZoneID)
			handlers.RespondNotFound(w, msgZoneNotFound)

		case errors.Is(err, checkConflict.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkConflict.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkConflict.ErrInvalidRecurrenceRule):
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, checkConflict.ErrTooManyOccurrences):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooManyOccurrences)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidConflictInput)

		default:
			h.logger.Error("POST /facilities/{id}/conflicts/check - Failed to check conflict: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities/{id}/conflicts/check - Checked: facility_id=%s, has_conflict=%t", facilityID, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
