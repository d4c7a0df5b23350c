package domain

import "time"

// ActorType is the category of the booking party
type ActorType string

const (
	ActorPrivatePerson    ActorType = "private-person"
	ActorLagForeninger    ActorType = "lag-foreninger"
	ActorParaply          ActorType = "paraply"
	ActorPrivateFirma     ActorType = "private-firma"
	ActorKommunaleEnheter ActorType = "kommunale-enheter"
)

// RequiresApproval returns true for subsidized/managed actor types whose
// bookings go through the approval workflow
func (a ActorType) RequiresApproval() bool {
	return a == ActorLagForeninger || a == ActorParaply
}

// IsValid returns true for known actor types
func (a ActorType) IsValid() bool {
	switch a {
	case ActorPrivatePerson, ActorLagForeninger, ActorParaply, ActorPrivateFirma, ActorKommunaleEnheter:
		return true
	}
	return false
}

// TimeSlotCategory is the time-of-day class of a slot
type TimeSlotCategory string

const (
	TimeSlotDay     TimeSlotCategory = "day"
	TimeSlotEvening TimeSlotCategory = "evening"
	TimeSlotNight   TimeSlotCategory = "night"
)

// DayType is the calendar class of a date
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
)

// PricingMode selects the pricing strategy
type PricingMode string

const (
	PricingModeRuleBased PricingMode = "rule-based"
	PricingModeFlat      PricingMode = "flat"
)

// PricingRule is a conditional multiplier or fixed price.
// Empty/nil dimensions match any value.
type PricingRule struct {
	ID               string
	Name             string
	ActorType        ActorType
	FacilityTypes    []string
	ActivityTypes    []string
	TimeSlotCategory *TimeSlotCategory
	DayType          *DayType
	Multiplier       float64
	FixedPrice       *float64 // Replaces the running price instead of multiplying
	Priority         int
	IsActive         bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
}

// IsValidOn returns true if date falls in the rule's validity window (inclusive)
func (r *PricingRule) IsValidOn(date time.Time) bool {
	if r.ValidFrom != nil && date.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && date.After(*r.ValidTo) {
		return false
	}
	return true
}

// BreakdownType classifies a price breakdown line
type BreakdownType string

const (
	BreakdownBase      BreakdownType = "base"
	BreakdownDiscount  BreakdownType = "discount"
	BreakdownSurcharge BreakdownType = "surcharge"
	BreakdownTax       BreakdownType = "tax"
)

// BreakdownItem is one line of the price breakdown
type BreakdownItem struct {
	Description string
	Amount      float64 // Negative for discounts
	Type        BreakdownType
}

// AdditionalService is a pre-priced ancillary line item (equipment, cleaning, ...)
type AdditionalService struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// Total returns price × quantity (quantity 0 counts as 1)
func (s AdditionalService) Total() float64 {
	if s.Quantity <= 0 {
		return s.Price
	}
	return s.Price * float64(s.Quantity)
}

// PriceCalculation is the output of the price aggregation
type PriceCalculation struct {
	BasePrice        float64 // Before adjustments
	FinalPrice       float64 // Net, before VAT
	VAT              float64
	TotalPrice       float64 // FinalPrice + VAT
	Breakdown        []BreakdownItem
	AppliedRuleIDs   []string
	RequiresApproval bool
	SlotCount        int
	Strategy         PricingMode
	TimeSlotCategory TimeSlotCategory
	DayType          DayType
}

// Scale multiplies every monetary component by n.
// Used for multi-slot requests: one representative slot is priced and scaled.
func (p *PriceCalculation) Scale(n int) {
	if n <= 1 {
		return
	}
	f := float64(n)
	p.BasePrice *= f
	p.FinalPrice *= f
	p.VAT *= f
	p.TotalPrice *= f
	for i := range p.Breakdown {
		p.Breakdown[i].Amount *= f
	}
	p.SlotCount *= n
}
