package pricing

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Input параметры расчета цены
//
// ZoneID и BookingType на цену не влияют: правила не различают зоны и типы
// бронирования. Они попадают только в лог ошибки расчета.
type Input struct {
	FacilityID         string
	ZoneID             string
	FacilityType       string
	StartDate          time.Time
	EndDate            *time.Time // При SlotCount == 0 задает число интервалов: по одному на день
	ActorType          domain.ActorType
	TimeSlot           string // "HH:MM-HH:MM"
	PricingMode        domain.PricingMode
	BookingType        domain.BookingType
	ActivityType       string
	SlotCount          int // Количество одинаковых интервалов; 0 без EndDate считается за 1
	AdditionalServices []domain.AdditionalService
}

// Query параметры подбора правил
// Пустые значения совпадают только с правилами без ограничения по измерению
type Query struct {
	ActorType        domain.ActorType
	FacilityType     string
	ActivityType     string
	TimeSlotCategory domain.TimeSlotCategory
	DayType          domain.DayType
	Date             time.Time // Нулевая дата отключает проверку срока действия
}

// Surcharges процентные надбавки стратегии FlatDiscountPricing
type Surcharges struct {
	EveningPercent float64
	NightPercent   float64
	WeekendPercent float64
	HolidayPercent float64
}
