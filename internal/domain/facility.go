package domain

// Facility is a bookable public facility (sports hall, meeting room, ...)
type Facility struct {
	ID           string
	Name         string
	FacilityType string
	Area         string // District / bydel
	Capacity     int
	PricePerHour float64
	Amenities    []string
	Description  string
	IsActive     bool
}

// HasAmenity returns true if the facility offers the amenity
func (f *Facility) HasAmenity(amenity string) bool {
	for _, a := range f.Amenities {
		if a == amenity {
			return true
		}
	}
	return false
}
