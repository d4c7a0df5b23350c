package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/psqlbuilder"
)

// Repository репозиторий ценовых таблиц (только чтение)
// Таблицы редактируются вне сервиса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценовых таблиц
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveRules возвращает активные ценовые правила в порядке добавления
// Сортировку по приоритету выполняет движок правил
func (r *Repository) GetActiveRules(ctx context.Context) ([]domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"actor_type",
		"facility_types",
		"activity_types",
		"time_slot_category",
		"day_type",
		"multiplier",
		"fixed_price",
		"priority",
		"is_active",
		"valid_from",
		"valid_to",
	).
		From("pricing_rules").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRules - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var rules []domain.PricingRule
	for rows.Next() {
		var (
			rule          domain.PricingRule
			facilityTypes []string
			activityTypes []string
			category      sql.NullString
			dayType       sql.NullString
			fixedPrice    sql.NullFloat64
			validFrom     sql.NullTime
			validTo       sql.NullTime
		)

		if err := rows.Scan(
			&rule.ID,
			&rule.Name,
			&rule.ActorType,
			pq.Array(&facilityTypes),
			pq.Array(&activityTypes),
			&category,
			&dayType,
			&rule.Multiplier,
			&fixedPrice,
			&rule.Priority,
			&rule.IsActive,
			&validFrom,
			&validTo,
		); err != nil {
			return nil, fmt.Errorf("%w: GetActiveRules - scan row: %v", ErrScanRow, err)
		}

		rule.FacilityTypes = facilityTypes
		rule.ActivityTypes = activityTypes
		if category.Valid {
			c := domain.TimeSlotCategory(category.String)
			rule.TimeSlotCategory = &c
		}
		if dayType.Valid {
			d := domain.DayType(dayType.String)
			rule.DayType = &d
		}
		if fixedPrice.Valid {
			rule.FixedPrice = &fixedPrice.Float64
		}
		if validFrom.Valid {
			rule.ValidFrom = &validFrom.Time
		}
		if validTo.Valid {
			rule.ValidTo = &validTo.Time
		}

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveRules - iterate rows: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetBasePrices возвращает базовые цены за час по типу объекта
func (r *Repository) GetBasePrices(ctx context.Context) (map[string]float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("facility_type", "price_per_hour").
		From("facility_type_prices").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBasePrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBasePrices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make(map[string]float64)
	for rows.Next() {
		var (
			facilityType string
			price        float64
		)
		if err := rows.Scan(&facilityType, &price); err != nil {
			return nil, fmt.Errorf("%w: GetBasePrices - scan row: %v", ErrScanRow, err)
		}
		prices[facilityType] = price
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBasePrices - iterate rows: %v", ErrScanRow, err)
	}

	return prices, nil
}

// GetActorDiscounts возвращает процент скидки по типу участника
// Отрицательный процент означает надбавку
func (r *Repository) GetActorDiscounts(ctx context.Context) (map[domain.ActorType]float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("actor_type", "discount_percent").
		From("actor_discounts").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActorDiscounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActorDiscounts - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	discounts := make(map[domain.ActorType]float64)
	for rows.Next() {
		var (
			actor   string
			percent float64
		)
		if err := rows.Scan(&actor, &percent); err != nil {
			return nil, fmt.Errorf("%w: GetActorDiscounts - scan row: %v", ErrScanRow, err)
		}
		discounts[domain.ActorType(actor)] = percent
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActorDiscounts - iterate rows: %v", ErrScanRow, err)
	}

	return discounts, nil
}
