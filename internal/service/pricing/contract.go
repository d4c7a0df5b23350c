package pricing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// PriceTables источник статических ценовых таблиц
// Реализуется репозиторием и кеширующим декоратором поверх него
type PriceTables interface {
	GetBasePrices(ctx context.Context) (map[string]float64, error)
	GetActorDiscounts(ctx context.Context) (map[domain.ActorType]float64, error)
	GetActiveRules(ctx context.Context) ([]domain.PricingRule, error)
}

// Calendar определяет тип дня (будний, выходной, праздник)
type Calendar interface {
	DayType(t time.Time) domain.DayType
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
