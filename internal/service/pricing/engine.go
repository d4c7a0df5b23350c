package pricing

import (
	"math"
	"sort"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// RuleEngine набор ценовых правил, упорядоченный по приоритету
// Снимок только читается после создания
type RuleEngine struct {
	rules []domain.PricingRule
}

// NewRuleEngine создает движок из снимка правил
// Порядок вставки сохраняется и разрешает равенство приоритетов
func NewRuleEngine(rules []domain.PricingRule) *RuleEngine {
	snapshot := make([]domain.PricingRule, len(rules))
	copy(snapshot, rules)
	return &RuleEngine{rules: snapshot}
}

// GetApplicableRules возвращает активные правила для запроса, по убыванию приоритета
// Тип участника должен совпадать точно, незаданные измерения правила совпадают с любым значением
func (e *RuleEngine) GetApplicableRules(q Query) []domain.PricingRule {
	result := make([]domain.PricingRule, 0, len(e.rules))
	for i := range e.rules {
		if e.rules[i].IsActive && matches(&e.rules[i], q) {
			result = append(result, e.rules[i])
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority > result[j].Priority
	})

	return result
}

func matches(r *domain.PricingRule, q Query) bool {
	if r.ActorType != q.ActorType {
		return false
	}
	if len(r.FacilityTypes) > 0 && !contains(r.FacilityTypes, q.FacilityType) {
		return false
	}
	if len(r.ActivityTypes) > 0 && !contains(r.ActivityTypes, q.ActivityType) {
		return false
	}
	if r.TimeSlotCategory != nil && *r.TimeSlotCategory != q.TimeSlotCategory {
		return false
	}
	if r.DayType != nil && *r.DayType != q.DayType {
		return false
	}
	if !q.Date.IsZero() && !r.IsValidOn(q.Date) {
		return false
	}
	return true
}

// step результат применения одного правила
type step struct {
	rule   domain.PricingRule
	before float64
	after  float64
}

// fold применяет правила по порядку: фиксированная цена заменяет текущую,
// множитель умножает. Округления на шагах нет.
func fold(base float64, rules []domain.PricingRule) (float64, []step) {
	price := base
	steps := make([]step, 0, len(rules))
	for _, r := range rules {
		before := price
		if r.FixedPrice != nil {
			price = *r.FixedPrice
		} else {
			price *= r.Multiplier
		}
		steps = append(steps, step{rule: r, before: before, after: price})
	}
	return price, steps
}

// CalculateFinalPrice применяет цепочку правил к базовой цене
// Все пройденные правила попадают в applied, итог округляется до целого только в конце
func CalculateFinalPrice(base float64, rules []domain.PricingRule) (float64, []domain.PricingRule) {
	price, _ := fold(base, rules)

	applied := make([]domain.PricingRule, len(rules))
	copy(applied, rules)

	return math.Round(price), applied
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// round2 округляет денежную сумму до эре
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
