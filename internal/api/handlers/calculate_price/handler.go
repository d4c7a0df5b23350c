package calculate_price

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-FacilityBooking/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-FacilityBooking/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFacilityNotFound   = "объект не найден"
	msgUnknownService     = "дополнительная услуга не найдена"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgInvalidPriceInput  = "некорректный запрос расчета цены"
)

type Handler struct {
	useCase  CalculatePriceUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CalculatePriceUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/facilities/{facilityId}/price
// Неудачный расчет отдается как 200 с priceAvailable=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID := mux.Vars(r)["facilityId"]

	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		h.logger.Warn("POST /facilities/{id}/price - Validation failed: facility_id=%s, fields=%v", facilityID, fields)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(facilityID, h.location)
	if err != nil {
		h.logger.Warn("POST /facilities/{id}/price - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrFacilityNotFound):
			h.logger.Warn("POST /facilities/{id}/price - Facility not found: facility_id=%s", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, calculatePrice.ErrUnknownService):
			h.logger.Warn("POST /facilities/{id}/price - Unknown service: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, calculatePrice.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPriceInput)

		default:
			h.logger.Error("POST /facilities/{id}/price - Failed to calculate price: facility_id=%s, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities/{id}/price - Price calculated: facility_id=%s, available=%t", facilityID, result.PriceAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
