package pricetables

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

const (
	keyPrefix         = "facility-booking:price-tables:"
	keyBasePrices     = keyPrefix + "base-prices"
	keyActorDiscounts = keyPrefix + "actor-discounts"
	keyRules          = keyPrefix + "rules"
)

// Cache кеширующий декоратор ценовых таблиц поверх redis
// Недоступность redis не ломает расчет: запрос уходит в источник
type Cache struct {
	source Source
	client RedisClient
	ttl    time.Duration
	logger Logger
}

// New создает кеширующий декоратор
func New(source Source, client RedisClient, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetBasePrices базовые цены за час по типу объекта
func (c *Cache) GetBasePrices(ctx context.Context) (map[string]float64, error) {
	var prices map[string]float64
	err := c.load(ctx, keyBasePrices, &prices, func(ctx context.Context) (interface{}, error) {
		return c.source.GetBasePrices(ctx)
	})
	return prices, err
}

// GetActorDiscounts процент скидки по типу участника
func (c *Cache) GetActorDiscounts(ctx context.Context) (map[domain.ActorType]float64, error) {
	var discounts map[domain.ActorType]float64
	err := c.load(ctx, keyActorDiscounts, &discounts, func(ctx context.Context) (interface{}, error) {
		return c.source.GetActorDiscounts(ctx)
	})
	return discounts, err
}

// GetActiveRules активные ценовые правила
func (c *Cache) GetActiveRules(ctx context.Context) ([]domain.PricingRule, error) {
	var rules []domain.PricingRule
	err := c.load(ctx, keyRules, &rules, func(ctx context.Context) (interface{}, error) {
		return c.source.GetActiveRules(ctx)
	})
	return rules, err
}

// load читает значение из кеша в dst; при промахе берет его из источника и сохраняет
func (c *Cache) load(ctx context.Context, key string, dst interface{}, fetch func(ctx context.Context) (interface{}, error)) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		jsonErr := json.Unmarshal(raw, dst)
		if jsonErr == nil {
			return nil
		}
		c.logger.Warn("pricetables: corrupted cache entry %s: %v", key, jsonErr)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.logger.Warn("pricetables: redis get %s failed: %v", key, err)
	}

	value, err := fetch(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("pricetables: redis set %s failed: %v", key, err)
	}

	return json.Unmarshal(data, dst)
}
