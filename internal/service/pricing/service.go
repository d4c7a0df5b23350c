package pricing

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// Settings параметры расчета цены
type Settings struct {
	DefaultBasePricePerHour float64
	VATRate                 float64
	Surcharges              Surcharges
}

// DefaultSettings параметры по умолчанию
func DefaultSettings() Settings {
	return Settings{
		DefaultBasePricePerHour: domain.DefaultBasePricePerHour,
		VATRate:                 domain.VATRate,
	}
}

// Service расчет итоговой цены бронирования
type Service struct {
	tables   PriceTables
	calendar Calendar
	settings Settings
	logger   Logger
}

// NewService создает новый экземпляр сервиса расчета цены
func NewService(tables PriceTables, cal Calendar, settings Settings, logger Logger) *Service {
	if settings.DefaultBasePricePerHour <= 0 {
		settings.DefaultBasePricePerHour = domain.DefaultBasePricePerHour
	}
	if settings.VATRate < 0 {
		settings.VATRate = domain.VATRate
	}
	return &Service{
		tables:   tables,
		calendar: cal,
		settings: settings,
		logger:   logger,
	}
}

// CalculatePrice рассчитывает цену бронирования
//
// Считается один интервал, затем все суммы умножаются на SlotCount.
// Это допущение: все интервалы должны иметь одинаковые признаки цены.
// Если интервалы попадают и на будни, и на выходные, итог будет приблизительным.
//
// Ошибка получения таблиц или некорректный интервал: запись в лог и nil.
func (s *Service) CalculatePrice(ctx context.Context, in Input) *domain.PriceCalculation {
	calc, err := s.calculate(ctx, in)
	if err != nil {
		s.logger.Error("CalculatePrice: facility=%s zone=%s type=%s actor=%s slot=%q: %v",
			in.FacilityID, in.ZoneID, in.BookingType, in.ActorType, in.TimeSlot, err)
		return nil
	}
	return calc
}

func (s *Service) calculate(ctx context.Context, in Input) (*domain.PriceCalculation, error) {
	// 1. Интервал и базовая цена за час
	slot, err := timeslots.ParseTimeSlot(in.StartDate, in.TimeSlot)
	if err != nil {
		return nil, err
	}

	basePrices, err := s.tables.GetBasePrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: base prices: %v", ErrPriceTables, err)
	}

	perHour, ok := basePrices[in.FacilityType]
	if !ok || perHour <= 0 {
		s.logger.Warn("CalculatePrice: no base price for facility type %q, using default %.2f", in.FacilityType, s.settings.DefaultBasePricePerHour)
		perHour = s.settings.DefaultBasePricePerHour
	}

	hours := slot.Duration().Hours()
	base := round2(perHour * hours)

	// 2. Категория времени суток и тип дня
	query := Query{
		ActorType:        in.ActorType,
		FacilityType:     in.FacilityType,
		ActivityType:     in.ActivityType,
		TimeSlotCategory: calendar.TimeSlotCategory(slot.Start),
		DayType:          s.calendar.DayType(in.StartDate),
		Date:             in.StartDate,
	}

	// 3-4. Стратегия корректировки
	strategy, err := s.strategy(ctx, in.PricingMode)
	if err != nil {
		return nil, err
	}
	adj := strategy.Apply(base, query)

	breakdown := make([]domain.BreakdownItem, 0, len(adj.Items)+len(in.AdditionalServices)+2)
	breakdown = append(breakdown, domain.BreakdownItem{
		Description: fmt.Sprintf("Base price (%g h × %.2f)", hours, perHour),
		Amount:      base,
		Type:        domain.BreakdownBase,
	})
	breakdown = append(breakdown, adj.Items...)

	// 5. Дополнительные услуги
	net := adj.Price
	for _, svc := range in.AdditionalServices {
		amount := round2(svc.Total())
		if amount == 0 {
			continue
		}
		breakdown = append(breakdown, domain.BreakdownItem{
			Description: svc.Name,
			Amount:      amount,
			Type:        domain.BreakdownSurcharge,
		})
		net += amount
	}
	net = round2(net)

	// 6. НДС (MVA)
	vat := round2(net * s.settings.VATRate)
	breakdown = append(breakdown, domain.BreakdownItem{
		Description: fmt.Sprintf("VAT %g%%", s.settings.VATRate*100),
		Amount:      vat,
		Type:        domain.BreakdownTax,
	})

	calc := &domain.PriceCalculation{
		BasePrice:        base,
		FinalPrice:       net,
		VAT:              vat,
		TotalPrice:       round2(net + vat),
		Breakdown:        breakdown,
		AppliedRuleIDs:   adj.AppliedRuleIDs,
		RequiresApproval: in.ActorType.RequiresApproval(), // 7. Согласование
		SlotCount:        1,
		Strategy:         strategy.Mode(),
		TimeSlotCategory: query.TimeSlotCategory,
		DayType:          query.DayType,
	}

	// 8. Несколько одинаковых интервалов
	calc.Scale(slotCount(in))

	return calc, nil
}

// strategy выбирает стратегию по режиму; пустой режим означает rule-based
func (s *Service) strategy(ctx context.Context, mode domain.PricingMode) (Strategy, error) {
	switch mode {
	case domain.PricingModeRuleBased, "":
		rules, err := s.tables.GetActiveRules(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: pricing rules: %v", ErrPriceTables, err)
		}
		return NewRuleBasedPricing(NewRuleEngine(rules)), nil

	case domain.PricingModeFlat:
		discounts, err := s.tables.GetActorDiscounts(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: actor discounts: %v", ErrPriceTables, err)
		}
		return NewFlatDiscountPricing(discounts, s.settings.Surcharges), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPricingMode, mode)
	}
}

// slotCount число интервалов: явное или по дням диапазона
func slotCount(in Input) int {
	if in.SlotCount > 0 || in.EndDate == nil {
		return in.SlotCount
	}
	return timeslots.DayCount(in.StartDate, *in.EndDate)
}
