package pricetables

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Source исходный источник ценовых таблиц (репозиторий)
type Source interface {
	GetBasePrices(ctx context.Context) (map[string]float64, error)
	GetActorDiscounts(ctx context.Context) (map[domain.ActorType]float64, error)
	GetActiveRules(ctx context.Context) ([]domain.PricingRule, error)
}

// RedisClient подмножество команд redis, нужное кешу
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
