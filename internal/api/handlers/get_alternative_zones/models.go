package get_alternative_zones

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getAlternativeZones "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_alternative_zones"
)

// ZoneResponse зона в ответе
type ZoneResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Capacity              int     `json:"capacity"`
	IsMainZone            bool    `json:"isMainZone"`
	ParentZoneID          *string `json:"parentZoneId,omitempty"`
	BookableIndependently bool    `json:"bookableIndependently"`
}

// AlternativeZonesResponse HTTP response model
type AlternativeZonesResponse struct {
	PreferredZoneID  string         `json:"preferredZoneId"`
	RequiredCapacity int            `json:"requiredCapacity"`
	Alternatives     []ZoneResponse `json:"alternatives"`
}

// ToUseCaseRequest формирует запрос use case; capacity необязателен
func ToUseCaseRequest(facilityID, zoneID, date, timeSlot, capacity string, loc *time.Location) (*getAlternativeZones.Request, error) {
	d, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return nil, err
	}

	req := &getAlternativeZones.Request{
		FacilityID: facilityID,
		ZoneID:     zoneID,
		Date:       d,
		TimeSlot:   timeSlot,
	}

	if capacity != "" {
		c, err := strconv.Atoi(capacity)
		if err != nil {
			return nil, err
		}
		req.RequiredCapacity = &c
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAlternativeZones.Response) *AlternativeZonesResponse {
	zones := make([]ZoneResponse, 0, len(resp.Alternatives))
	for _, z := range resp.Alternatives {
		zones = append(zones, ZoneResponse{
			ID:                    z.ID,
			Name:                  z.Name,
			Capacity:              z.Capacity,
			IsMainZone:            z.IsMainZone,
			ParentZoneID:          z.ParentZoneID,
			BookableIndependently: z.BookableIndependently,
		})
	}

	return &AlternativeZonesResponse{
		PreferredZoneID:  resp.PreferredZone.ID,
		RequiredCapacity: resp.RequiredCapacity,
		Alternatives:     zones,
	}
}
