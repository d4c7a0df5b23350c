package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	calculatePrice "github.com/m04kA/SMC-FacilityBooking/internal/usecase/calculate_price"
)

// ServiceOrderRequest заказ дополнительной услуги
type ServiceOrderRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	ZoneID             string                `json:"zoneId,omitempty"`
	StartDate          string                `json:"startDate" validate:"required,date"`
	EndDate            *string               `json:"endDate,omitempty" validate:"omitempty,date"`
	TimeSlot           string                `json:"timeSlot" validate:"required,timeslot"`
	ActorType          string                `json:"actorType" validate:"required,oneof=private-person lag-foreninger paraply private-firma kommunale-enheter"`
	PricingMode        string                `json:"pricingMode,omitempty" validate:"omitempty,oneof=rule-based flat"`
	BookingType        string                `json:"bookingType,omitempty" validate:"omitempty,oneof=engangs fastlan rammetid strotimer"`
	ActivityType       string                `json:"activityType,omitempty"`
	SlotCount          int                   `json:"slotCount,omitempty" validate:"gte=0"`
	AdditionalServices []ServiceOrderRequest `json:"additionalServices,omitempty" validate:"dive"`
}

// BreakdownItemResponse строка разбивки цены
type BreakdownItemResponse struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// CalculationResponse результат расчета
type CalculationResponse struct {
	BasePrice        float64                 `json:"basePrice"`
	FinalPrice       float64                 `json:"finalPrice"`
	VAT              float64                 `json:"vat"`
	TotalPrice       float64                 `json:"totalPrice"`
	Breakdown        []BreakdownItemResponse `json:"breakdown"`
	AppliedRuleIDs   []string                `json:"appliedRuleIds"`
	RequiresApproval bool                    `json:"requiresApproval"`
	SlotCount        int                     `json:"slotCount"`
	Strategy         string                  `json:"strategy"`
	TimeSlotCategory string                  `json:"timeSlotCategory"`
	DayType          string                  `json:"dayType"`
}

// CalculatePriceResponse HTTP response model
type CalculatePriceResponse struct {
	PriceAvailable   bool                 `json:"priceAvailable"`
	ServicesDegraded bool                 `json:"servicesDegraded,omitempty"`
	Calculation      *CalculationResponse `json:"calculation,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest(facilityID string, loc *time.Location) (*calculatePrice.Request, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, r.StartDate, loc)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if r.EndDate != nil {
		d, err := time.ParseInLocation(domain.DateFormat, *r.EndDate, loc)
		if err != nil {
			return nil, err
		}
		endDate = &d
	}

	services := make([]calculatePrice.ServiceOrder, 0, len(r.AdditionalServices))
	for _, s := range r.AdditionalServices {
		services = append(services, calculatePrice.ServiceOrder{ID: s.ID, Quantity: s.Quantity})
	}

	return &calculatePrice.Request{
		FacilityID:   facilityID,
		ZoneID:       r.ZoneID,
		StartDate:    startDate,
		EndDate:      endDate,
		TimeSlot:     r.TimeSlot,
		ActorType:    domain.ActorType(r.ActorType),
		PricingMode:  domain.PricingMode(r.PricingMode),
		BookingType:  domain.BookingType(r.BookingType),
		ActivityType: r.ActivityType,
		SlotCount:    r.SlotCount,
		Services:     services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *CalculatePriceResponse {
	out := &CalculatePriceResponse{
		PriceAvailable:   resp.PriceAvailable,
		ServicesDegraded: resp.ServicesDegraded,
	}
	if resp.Calculation == nil {
		return out
	}

	calc := resp.Calculation
	breakdown := make([]BreakdownItemResponse, 0, len(calc.Breakdown))
	for _, item := range calc.Breakdown {
		breakdown = append(breakdown, BreakdownItemResponse{
			Description: item.Description,
			Amount:      item.Amount,
			Type:        string(item.Type),
		})
	}

	ruleIDs := calc.AppliedRuleIDs
	if ruleIDs == nil {
		ruleIDs = []string{}
	}

	out.Calculation = &CalculationResponse{
		BasePrice:        calc.BasePrice,
		FinalPrice:       calc.FinalPrice,
		VAT:              calc.VAT,
		TotalPrice:       calc.TotalPrice,
		Breakdown:        breakdown,
		AppliedRuleIDs:   ruleIDs,
		RequiresApproval: calc.RequiresApproval,
		SlotCount:        calc.SlotCount,
		Strategy:         string(calc.Strategy),
		TimeSlotCategory: string(calc.TimeSlotCategory),
		DayType:          string(calc.DayType),
	}
	return out
}
