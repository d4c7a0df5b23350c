package search_facilities

import (
	searchFacilities "github.com/m04kA/SMC-FacilityBooking/internal/usecase/search_facilities"
)

// FacilityResponse объект в результатах поиска
type FacilityResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	FacilityType string   `json:"facilityType"`
	Area         string   `json:"area"`
	Capacity     int      `json:"capacity"`
	PricePerHour float64  `json:"pricePerHour"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description,omitempty"`
}

// SearchFacilitiesResponse HTTP response model
type SearchFacilitiesResponse struct {
	Total      int                `json:"total"`
	Facilities []FacilityResponse `json:"facilities"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchFacilities.Response) *SearchFacilitiesResponse {
	facilities := make([]FacilityResponse, 0, len(resp.Facilities))
	for _, f := range resp.Facilities {
		amenities := f.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		facilities = append(facilities, FacilityResponse{
			ID:           f.ID,
			Name:         f.Name,
			FacilityType: f.FacilityType,
			Area:         f.Area,
			Capacity:     f.Capacity,
			PricePerHour: f.PricePerHour,
			Amenities:    amenities,
			Description:  f.Description,
		})
	}

	return &SearchFacilitiesResponse{
		Total:      len(facilities),
		Facilities: facilities,
	}
}
