package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Adjustment результат стратегии для одного интервала
type Adjustment struct {
	Price          float64
	Items          []domain.BreakdownItem
	AppliedRuleIDs []string
}

// Strategy стратегия корректировки базовой цены
type Strategy interface {
	Mode() domain.PricingMode
	Apply(base float64, in Query) Adjustment
}

// RuleBasedPricing цена по цепочке приоритетных правил
type RuleBasedPricing struct {
	engine *RuleEngine
}

// NewRuleBasedPricing создает стратегию поверх движка правил
func NewRuleBasedPricing(engine *RuleEngine) *RuleBasedPricing {
	return &RuleBasedPricing{engine: engine}
}

// Mode возвращает режим стратегии
func (s *RuleBasedPricing) Mode() domain.PricingMode {
	return domain.PricingModeRuleBased
}

// Apply проходит по применимым правилам; каждое изменение цены дает строку разбивки
// Строка со скидкой, если правило цену понизило, с надбавкой - если повысило
func (s *RuleBasedPricing) Apply(base float64, in Query) Adjustment {
	rules := s.engine.GetApplicableRules(in)
	raw, steps := fold(base, rules)
	final, applied := CalculateFinalPrice(base, rules)

	adj := Adjustment{Price: final}
	for _, r := range applied {
		adj.AppliedRuleIDs = append(adj.AppliedRuleIDs, r.ID)
	}

	for _, st := range steps {
		if item, ok := changeItem(ruleLabel(st.rule), st.after-st.before); ok {
			adj.Items = append(adj.Items, item)
		}
	}
	if item, ok := changeItem("Rounding", final-raw); ok {
		adj.Items = append(adj.Items, item)
	}

	return adj
}

// FlatDiscountPricing упрощенная стратегия: процентная скидка по типу участника
// и процентные надбавки за вечер, ночь, выходные и праздники.
// Все проценты считаются от базовой цены.
type FlatDiscountPricing struct {
	discounts  map[domain.ActorType]float64
	surcharges Surcharges
}

// NewFlatDiscountPricing создает стратегию по таблице скидок
// Отрицательный процент скидки работает как надбавка
func NewFlatDiscountPricing(discounts map[domain.ActorType]float64, surcharges Surcharges) *FlatDiscountPricing {
	return &FlatDiscountPricing{
		discounts:  discounts,
		surcharges: surcharges,
	}
}

// Mode возвращает режим стратегии
func (s *FlatDiscountPricing) Mode() domain.PricingMode {
	return domain.PricingModeFlat
}

// Apply применяет таблицу скидок и надбавок
func (s *FlatDiscountPricing) Apply(base float64, in Query) Adjustment {
	adj := Adjustment{Price: base}

	add := func(label string, percent float64, sign float64) {
		if percent == 0 {
			return
		}
		amount := round2(base * percent / 100 * sign)
		if item, ok := changeItem(fmt.Sprintf("%s (%g%%)", label, math.Abs(percent)), amount); ok {
			adj.Items = append(adj.Items, item)
			adj.Price += amount
		}
	}

	add(fmt.Sprintf("Actor type %s", in.ActorType), s.discounts[in.ActorType], -1)

	switch in.TimeSlotCategory {
	case domain.TimeSlotEvening:
		add("Evening surcharge", s.surcharges.EveningPercent, 1)
	case domain.TimeSlotNight:
		add("Night surcharge", s.surcharges.NightPercent, 1)
	}

	switch in.DayType {
	case domain.DayTypeWeekend:
		add("Weekend surcharge", s.surcharges.WeekendPercent, 1)
	case domain.DayTypeHoliday:
		add("Holiday surcharge", s.surcharges.HolidayPercent, 1)
	}

	adj.Price = round2(math.Max(adj.Price, 0))
	return adj
}

// changeItem строка разбивки для изменения цены; нулевое изменение строки не дает
func changeItem(description string, delta float64) (domain.BreakdownItem, bool) {
	delta = round2(delta)
	switch {
	case delta < 0:
		return domain.BreakdownItem{Description: description, Amount: delta, Type: domain.BreakdownDiscount}, true
	case delta > 0:
		return domain.BreakdownItem{Description: description, Amount: delta, Type: domain.BreakdownSurcharge}, true
	default:
		return domain.BreakdownItem{}, false
	}
}

func ruleLabel(r domain.PricingRule) string {
	if r.Name != "" {
		return r.Name
	}
	return "Rule " + r.ID
}
