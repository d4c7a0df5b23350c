package check_conflict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

// UseCase use case для проверки конфликтов бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	zoneRepo       ZoneRepository
	facilityRepo   FacilityRepository
	checker        ConflictChecker
	txManager      TransactionManager
	metrics        Metrics
	logger         Logger
	maxOccurrences int
}

// NewUseCase создает новый экземпляр use case
// maxOccurrences <= 0 означает значение по умолчанию domain.MaxOccurrences
func NewUseCase(
	bookingRepo BookingRepository,
	zoneRepo ZoneRepository,
	facilityRepo FacilityRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	maxOccurrences int,
) *UseCase {
	if maxOccurrences <= 0 {
		maxOccurrences = domain.MaxOccurrences
	}
	return &UseCase{
		bookingRepo:    bookingRepo,
		zoneRepo:       zoneRepo,
		facilityRepo:   facilityRepo,
		checker:        checker,
		txManager:      txManager,
		metrics:        metrics,
		logger:         logger,
		maxOccurrences: maxOccurrences,
	}
}

// Execute выполняет проверку конфликта
// Бронирования и зоны читаются в одной read-only транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: facility=%s, zone=%s, mode=%s, date=%s, slot=%s",
		req.FacilityID, req.ZoneID, req.Mode, req.StartDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	checkReq := conflicts.Request{
		FacilityID:     req.FacilityID,
		ZoneID:         req.ZoneID,
		StartDate:      req.StartDate,
		TimeSlot:       req.TimeSlot,
		Mode:           req.Mode,
		EndDate:        req.EndDate,
		RecurrenceRule: req.RecurrenceRule,
	}
	if checkReq.Mode == "" {
		checkReq.Mode = domain.BookingModeOneTime
	}

	// 2. Ограничиваем размер развертки: генератор останавливается на пределе + 1
	proposed := uc.checker.ProposedOccurrences(checkReq, uc.maxOccurrences+1)
	if len(proposed) > uc.maxOccurrences {
		uc.logger.Warn("CheckConflict: facility=%s expands to more than %d occurrences", req.FacilityID, uc.maxOccurrences)
		return nil, fmt.Errorf("%w: more than %d occurrences", ErrTooManyOccurrences, uc.maxOccurrences)
	}
	if len(proposed) == 0 {
		uc.metrics.ObserveConflictCheck(string(checkReq.Mode), false, 0)
		return &Response{ConflictingDates: []time.Time{}}, nil
	}

	// 3. Читаем объект, зоны и бронирования из одного снимка
	var bookings []domain.BookingEntry
	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		if _, err := uc.facilityRepo.GetByID(ctx, req.FacilityID); err != nil {
			if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
				return ErrFacilityNotFound
			}
			return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
		}

		zones, err := uc.zoneRepo.GetByFacility(ctx, req.FacilityID)
		if err != nil {
			return fmt.Errorf("%w: failed to get zones: %v", ErrInternal, err)
		}
		if req.ZoneID != "" {
			if _, ok := findZone(zones, req.ZoneID); !ok {
				return ErrZoneNotFound
			}
		}
		checkReq.Zones = zones

		// Разовые бронирования читаем только в окне развертки
		bookings, err = uc.bookingRepo.GetByFacility(ctx, domain.BookingsFilter{
			FacilityID: req.FacilityID,
			From:       ptr.Ptr(proposed[0].Start),
			To:         ptr.Ptr(proposed[len(proposed)-1].End),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrFacilityNotFound):
			uc.logger.Warn("CheckConflict: facility=%s not found", req.FacilityID)
		case errors.Is(err, ErrZoneNotFound):
			uc.logger.Warn("CheckConflict: zone=%s not found in facility=%s", req.ZoneID, req.FacilityID)
		default:
			uc.logger.Error("CheckConflict: failed to load data for facility=%s: %v", req.FacilityID, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	// 4. Проверка конфликта
	result := uc.checker.CheckBookingConflict(checkReq, bookings)
	uc.metrics.ObserveConflictCheck(string(checkReq.Mode), result.HasConflict, len(proposed))

	if result.HasConflict {
		uc.logger.Info("CheckConflict: facility=%s conflicts with booking=%s (%s), dates=%d",
			req.FacilityID, result.ConflictingBookingID, result.ConflictType, len(result.ConflictingDates))
	}

	// 5. Формируем ответ
	dates := result.ConflictingDates
	if dates == nil {
		dates = []time.Time{}
	}
	return &Response{
		HasConflict:          result.HasConflict,
		ConflictType:         result.ConflictType,
		ConflictingBookingID: result.ConflictingBookingID,
		ConflictingDates:     dates,
		ProposedOccurrences:  len(proposed),
	}, nil
}
