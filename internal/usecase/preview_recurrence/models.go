package preview_recurrence

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
)

// Request модель запроса предпросмотра
// Правило задается либо строкой Rule, либо по частям (Frequency и остальные поля)
type Request struct {
	StartDate time.Time
	TimeSlot  string // "HH:MM-HH:MM"

	Rule string

	Frequency timeslots.Frequency
	Interval  int
	Weekdays  []time.Weekday
	Count     *int
	Until     *time.Time
}

// Response модель ответа
type Response struct {
	Rule        string // Каноническая строка правила
	Occurrences []domain.TimeSlot
	Truncated   bool // Развертка обрезана по лимиту
}
