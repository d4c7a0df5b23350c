package preview_recurrence

import (
	"context"

	previewRecurrence "github.com/m04kA/SMC-FacilityBooking/internal/usecase/preview_recurrence"
)

type PreviewRecurrenceUseCase interface {
	Execute(ctx context.Context, req *previewRecurrence.Request) (*previewRecurrence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
