package get_zone_availability

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	getZoneAvailability "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_zone_availability"
)

// ZoneConflictResponse конфликт зоны с бронированием
type ZoneConflictResponse struct {
	BookingID string `json:"bookingId"`
	ZoneID    string `json:"zoneId,omitempty"`
	Type      string `json:"type"`
}

// ZoneStatusResponse статус одной зоны
type ZoneStatusResponse struct {
	ZoneID      string                 `json:"zoneId"`
	Name        string                 `json:"name"`
	Capacity    int                    `json:"capacity"`
	IsMainZone  bool                   `json:"isMainZone"`
	IsAvailable bool                   `json:"isAvailable"`
	Conflicts   []ZoneConflictResponse `json:"conflicts"`
}

// ZoneAvailabilityResponse HTTP response model
type ZoneAvailabilityResponse struct {
	FacilityID     string               `json:"facilityId"`
	Date           string               `json:"date"`
	TimeSlot       string               `json:"timeSlot"`
	AvailableCount int                  `json:"availableCount"`
	Zones          []ZoneStatusResponse `json:"zones"`
}

// ToUseCaseRequest формирует запрос use case
func ToUseCaseRequest(facilityID, date, timeSlot string, loc *time.Location) (*getZoneAvailability.Request, error) {
	d, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return nil, err
	}

	return &getZoneAvailability.Request{
		FacilityID: facilityID,
		Date:       d,
		TimeSlot:   timeSlot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getZoneAvailability.Request, resp *getZoneAvailability.Response) *ZoneAvailabilityResponse {
	zones := make([]ZoneStatusResponse, 0, len(resp.Zones))
	for _, st := range resp.Zones {
		conflicts := make([]ZoneConflictResponse, 0, len(st.Conflicts))
		for _, c := range st.Conflicts {
			conflicts = append(conflicts, ZoneConflictResponse{
				BookingID: c.BookingID,
				ZoneID:    c.ZoneID,
				Type:      string(c.Type),
			})
		}
		zones = append(zones, ZoneStatusResponse{
			ZoneID:      st.Zone.ID,
			Name:        st.Zone.Name,
			Capacity:    st.Zone.Capacity,
			IsMainZone:  st.Zone.IsMainZone,
			IsAvailable: st.IsAvailable,
			Conflicts:   conflicts,
		})
	}

	return &ZoneAvailabilityResponse{
		FacilityID:     req.FacilityID,
		Date:           req.Date.Format(domain.DateFormat),
		TimeSlot:       req.TimeSlot,
		AvailableCount: resp.AvailableCount,
		Zones:          zones,
	}
}
