package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ServiceOrder заказ дополнительной услуги
type ServiceOrder struct {
	ID       string
	Quantity int // 0 считается за 1
}

// Request модель запроса расчета цены
type Request struct {
	FacilityID   string
	ZoneID       string
	StartDate    time.Time
	EndDate      *time.Time // Для date-range: без SlotCount число дней задает число интервалов
	TimeSlot     string     // "HH:MM-HH:MM"
	ActorType    domain.ActorType
	PricingMode  domain.PricingMode // Пусто считается rule-based
	BookingType  domain.BookingType
	ActivityType string
	SlotCount    int
	Services     []ServiceOrder
}

// Response модель ответа
// PriceAvailable=false: расчет не удался, Calculation пустой
type Response struct {
	PriceAvailable   bool
	Calculation      *domain.PriceCalculation
	ServicesDegraded bool // Каталог услуг недоступен, цена без дополнительных услуг
}
