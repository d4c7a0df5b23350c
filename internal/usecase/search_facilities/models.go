package search_facilities

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/facilityfilter"
)

// Request модель запроса поиска объектов
type Request struct {
	Filters []facilityfilter.Filter
}

// Response модель ответа со списком найденных объектов
type Response struct {
	Facilities []domain.Facility
}
