package domain

// Zone is a bookable area of a facility.
// A main zone represents the whole facility and conflicts with every other zone of it.
// ConflictingZoneIDs lists explicit mutual exclusions and is meant to be symmetric.
type Zone struct {
	ID                    string
	FacilityID            string
	Name                  string
	Capacity              int
	IsActive              bool
	IsMainZone            bool
	ParentZoneID          *string
	BookableIndependently bool
	ConflictingZoneIDs    []string
}

// ConflictsWith returns true if zoneID is in the explicit exclusion list
func (z *Zone) ConflictsWith(zoneID string) bool {
	for _, id := range z.ConflictingZoneIDs {
		if id == zoneID {
			return true
		}
	}
	return false
}

// IsChildOf returns true if parentID is the direct parent of the zone
func (z *Zone) IsChildOf(parentID string) bool {
	return z.ParentZoneID != nil && *z.ParentZoneID == parentID
}
