package facilityfilter

import (
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Kind вид фильтра
type Kind string

const (
	KindSearch        Kind = "search"
	KindType          Kind = "type"
	KindArea          Kind = "area"
	KindCapacityRange Kind = "capacity-range"
	KindPriceRange    Kind = "price-range"
	KindAmenities     Kind = "amenities"
)

// Filter предикат над объектом; набор вариантов закрыт (см. Kind)
type Filter interface {
	Kind() Kind
	Match(f *domain.Facility) bool
}

// Search подстрока в названии или описании, без учета регистра
type Search struct {
	Query string
}

func (Search) Kind() Kind { return KindSearch }

func (s Search) Match(f *domain.Facility) bool {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Name), q) ||
		strings.Contains(strings.ToLower(f.Description), q)
}

// Type тип объекта из списка
type Type struct {
	Types []string
}

func (Type) Kind() Kind { return KindType }

func (t Type) Match(f *domain.Facility) bool {
	return len(t.Types) == 0 || containsFold(t.Types, f.FacilityType)
}

// Area район (bydel) из списка
type Area struct {
	Areas []string
}

func (Area) Kind() Kind { return KindArea }

func (a Area) Match(f *domain.Facility) bool {
	return len(a.Areas) == 0 || containsFold(a.Areas, f.Area)
}

// CapacityRange вместимость в границах, nil граница не ограничивает
type CapacityRange struct {
	Min *int
	Max *int
}

func (CapacityRange) Kind() Kind { return KindCapacityRange }

func (c CapacityRange) Match(f *domain.Facility) bool {
	if c.Min != nil && f.Capacity < *c.Min {
		return false
	}
	if c.Max != nil && f.Capacity > *c.Max {
		return false
	}
	return true
}

// PriceRange цена за час в границах, nil граница не ограничивает
type PriceRange struct {
	Min *float64
	Max *float64
}

func (PriceRange) Kind() Kind { return KindPriceRange }

func (p PriceRange) Match(f *domain.Facility) bool {
	if p.Min != nil && f.PricePerHour < *p.Min {
		return false
	}
	if p.Max != nil && f.PricePerHour > *p.Max {
		return false
	}
	return true
}

// Amenities объект должен иметь все перечисленные удобства
type Amenities struct {
	Required []string
}

func (Amenities) Kind() Kind { return KindAmenities }

func (a Amenities) Match(f *domain.Facility) bool {
	for _, amenity := range a.Required {
		if !f.HasAmenity(amenity) {
			return false
		}
	}
	return true
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}
