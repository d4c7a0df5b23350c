package preview_recurrence

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	previewRecurrence "github.com/m04kA/SMC-FacilityBooking/internal/usecase/preview_recurrence"
	"github.com/m04kA/SMC-FacilityBooking/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimeSlot    = "некорректный временной интервал"
	msgInvalidRecurrence  = "некорректное правило повторения"
)

type Handler struct {
	useCase  PreviewRecurrenceUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase PreviewRecurrenceUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/recurrence/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewRecurrenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurrence/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		h.logger.Warn("POST /recurrence/preview - Validation failed: fields=%v", fields)
		handlers.RespondValidationError(w, msgValidationFailed, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewRecurrence.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, previewRecurrence.ErrInvalidRecurrenceRule), errors.Is(err, previewRecurrence.ErrInvalidInput):
			h.logger.Warn("POST /recurrence/preview - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		default:
			h.logger.Error("POST /recurrence/preview - Failed to preview: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recurrence/preview - Preview built: rule=%s, count=%d", result.Rule, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
