package get_zone_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case для получения статуса зон на интервал
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
	uc.logger.Info("GetZoneAvailability: facility=%s, date=%s, slot=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Разбираем интервал
	slot, err := timeslots.ParseTimeSlot(req.Date, req.TimeSlot)
	if err != nil {
		uc.logger.Warn("GetZoneAvailability: invalid time slot %q: %v", req.TimeSlot, err)
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
			uc.logger.Warn("GetZoneAvailability: facility=%s not found", req.FacilityID)
			return nil, err
		}
		uc.logger.Error("GetZoneAvailability: failed to load data for facility=%s: %v", req.FacilityID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 3. Статус зон
	statuses, err := uc.availability.GetZoneAvailabilityStatus(zones, bookings, req.Date, req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	resp := &Response{Zones: statuses}
	for _, st := range statuses {
		if st.IsAvailable {
			resp.AvailableCount++
		}
	}

	uc.logger.Info("GetZoneAvailability: facility=%s, zones=%d, available=%d",
		req.FacilityID, len(statuses), resp.AvailableCount)
	return resp, nil
}
