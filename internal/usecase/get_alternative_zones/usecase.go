package get_alternative_zones

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case для подбора зон вместо занятой
type UseCase struct {
	bookingRepo  BookingRepository
	zoneRepo     ZoneRepository
	facilityRepo FacilityRepository
	availability AvailabilityService
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	zoneRepo ZoneRepository,
	facilityRepo FacilityRepository,
	availability AvailabilityService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		zoneRepo:     zoneRepo,
		facilityRepo: facilityRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAlternativeZones: facility=%s, zone=%s, date=%s, slot=%s",
		req.FacilityID, req.ZoneID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация
	if req.RequiredCapacity != nil && *req.RequiredCapacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	slot, err := timeslots.ParseTimeSlot(req.Date, req.TimeSlot)
	if err != nil {
		uc.logger.Warn("GetAlternativeZones: invalid time slot %q: %v", req.TimeSlot, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 2. Читаем объект, зоны и бронирования, пересекающие интервал
	var (
		zones    []domain.Zone
		bookings []domain.BookingEntry
	)
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if _, err := uc.facilityRepo.GetByID(ctx, req.FacilityID); err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				return ErrFacilityNotFound
			}
			return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
		}

		var err error
		if zones, err = uc.zoneRepo.GetByFacility(ctx, req.FacilityID); err != nil {
			return fmt.Errorf("%w: failed to get zones: %v", ErrInternal, err)
		}

		bookings, err = uc.bookingRepo.GetByFacility(ctx, domain.BookingsFilter{
			FacilityID: req.FacilityID,
			From:       ptr.Ptr(slot.Start),
			To:         ptr.Ptr(slot.End),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFacilityNotFound) {
			uc.logger.Warn("GetAlternativeZones: facility=%s not found", req.FacilityID)
			return nil, err
		}
		uc.logger.Error("GetAlternativeZones: failed to load data for facility=%s: %v", req.FacilityID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 3. Предпочтительная зона должна принадлежать объекту
	var preferred *domain.Zone
	for i := range zones {
		if zones[i].ID == req.ZoneID {
			preferred = &zones[i]
			break
		}
	}
	if preferred == nil {
		uc.logger.Warn("GetAlternativeZones: zone=%s not found in facility=%s", req.ZoneID, req.FacilityID)
		return nil, ErrZoneNotFound
	}

	capacity := ptr.Value(req.RequiredCapacity)
	if req.RequiredCapacity == nil {
		capacity = preferred.Capacity
	}

	// 4. Подбор альтернатив
	alternatives, err := uc.availability.GetAlternativeZones(zones, bookings, req.ZoneID, req.Date, req.TimeSlot, capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	uc.logger.Info("GetAlternativeZones: facility=%s, zone=%s, capacity=%d, alternatives=%d",
		req.FacilityID, req.ZoneID, capacity, len(alternatives))

	return &Response{
		PreferredZone:    *preferred,
		RequiredCapacity: capacity,
		Alternatives:     alternatives,
	}, nil
}
