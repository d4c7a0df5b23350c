package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/servicecatalog"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/pricing"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
}

// ServiceCatalogClient интерфейс клиента каталога дополнительных услуг
type ServiceCatalogClient interface {
	GetAdditionalServicesWithGracefulDegradation(ctx context.Context, facilityID string, ids []string) ([]servicecatalog.Service, error)
}

// PriceCalculator интерфейс сервиса расчета цены
type PriceCalculator interface {
	CalculatePrice(ctx context.Context, in pricing.Input) *domain.PriceCalculation
}

// Metrics интерфейс сбора метрик расчетов
type Metrics interface {
	ObservePriceCalculation(mode string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
