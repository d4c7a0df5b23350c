package facilityfilter

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ErrInvalidFilter возвращается при некорректном значении параметра фильтра
var ErrInvalidFilter = errors.New("invalid filter")

// Apply возвращает объекты, удовлетворяющие всем фильтрам; порядок сохраняется
// Неактивные объекты отбрасываются всегда
func Apply(facilities []domain.Facility, filters []Filter) []domain.Facility {
	result := make([]domain.Facility, 0, len(facilities))
	for i := range facilities {
		if facilities[i].IsActive && MatchAll(&facilities[i], filters) {
			result = append(result, facilities[i])
		}
	}
	return result
}

// MatchAll проверяет объект по всем фильтрам (логическое И)
func MatchAll(f *domain.Facility, filters []Filter) bool {
	for _, flt := range filters {
		if !flt.Match(f) {
			return false
		}
	}
	return true
}

// ParseFilters строит фильтры из query-параметров:
// search, type, area, minCapacity, maxCapacity, minPrice, maxPrice, amenities.
// Списки передаются через запятую или повтором параметра.
func ParseFilters(q url.Values) ([]Filter, error) {
	var filters []Filter

	if s := strings.TrimSpace(q.Get("search")); s != "" {
		filters = append(filters, Search{Query: s})
	}
	if types := listParam(q, "type"); len(types) > 0 {
		filters = append(filters, Type{Types: types})
	}
	if areas := listParam(q, "area"); len(areas) > 0 {
		filters = append(filters, Area{Areas: areas})
	}

	minCapacity, err := intParam(q, "minCapacity")
	if err != nil {
		return nil, err
	}
	maxCapacity, err := intParam(q, "maxCapacity")
	if err != nil {
		return nil, err
	}
	if minCapacity != nil || maxCapacity != nil {
		if minCapacity != nil && maxCapacity != nil && *minCapacity > *maxCapacity {
			return nil, fmt.Errorf("%w: minCapacity is greater than maxCapacity", ErrInvalidFilter)
		}
		filters = append(filters, CapacityRange{Min: minCapacity, Max: maxCapacity})
	}

	minPrice, err := floatParam(q, "minPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := floatParam(q, "maxPrice")
	if err != nil {
		return nil, err
	}
	if minPrice != nil || maxPrice != nil {
		if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
			return nil, fmt.Errorf("%w: minPrice is greater than maxPrice", ErrInvalidFilter)
		}
		filters = append(filters, PriceRange{Min: minPrice, Max: maxPrice})
	}

	if amenities := listParam(q, "amenities"); len(amenities) > 0 {
		filters = append(filters, Amenities{Required: amenities})
	}

	return filters, nil
}

func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intParam(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidFilter, key)
	}
	return &v, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidFilter, key)
	}
	return &v, nil
}
