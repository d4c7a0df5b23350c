package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/servicecatalog"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/pricing"
)

// UseCase use case для расчета цены бронирования
type UseCase struct {
	facilityRepo FacilityRepository
	catalog      ServiceCatalogClient
	calculator   PriceCalculator
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityRepo FacilityRepository,
	catalog ServiceCatalogClient,
	calculator PriceCalculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityRepo: facilityRepo,
		catalog:      catalog,
		calculator:   calculator,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case
// Ошибка расчета не считается ошибкой запроса: ответ с PriceAvailable=false
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: facility=%s, zone=%s, actor=%s, mode=%s, date=%s, slot=%s",
		req.FacilityID, req.ZoneID, req.ActorType, req.PricingMode, req.StartDate.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	slotCount, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Тип объекта определяет базовую цену
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CalculatePrice: facility=%s not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get facility=%s: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Дополнительные услуги из каталога
	services, degraded, err := uc.additionalServices(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Расчет
	mode := req.PricingMode
	if mode == "" {
		mode = domain.PricingModeRuleBased
	}
	calc := uc.calculator.CalculatePrice(ctx, pricing.Input{
		FacilityID:         req.FacilityID,
		ZoneID:             req.ZoneID,
		FacilityType:       facility.FacilityType,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ActorType:          req.ActorType,
		TimeSlot:           req.TimeSlot,
		PricingMode:        mode,
		BookingType:        req.BookingType,
		ActivityType:       req.ActivityType,
		SlotCount:          slotCount,
		AdditionalServices: services,
	})
	uc.metrics.ObservePriceCalculation(string(mode), calc != nil)

	if calc == nil {
		uc.logger.Warn("CalculatePrice: price unavailable for facility=%s", req.FacilityID)
		return &Response{PriceAvailable: false, ServicesDegraded: degraded}, nil
	}

	uc.logger.Info("CalculatePrice: facility=%s, total=%.2f, slots=%d, rules=%v",
		req.FacilityID, calc.TotalPrice, calc.SlotCount, calc.AppliedRuleIDs)

	return &Response{
		PriceAvailable:   true,
		Calculation:      calc,
		ServicesDegraded: degraded,
	}, nil
}

// additionalServices получает услуги каталога и проставляет количество
// Недоступный каталог не прерывает расчет
func (uc *UseCase) additionalServices(ctx context.Context, req *Request) ([]domain.AdditionalService, bool, error) {
	if len(req.Services) == 0 {
		return nil, false, nil
	}

	ids := make([]string, 0, len(req.Services))
	for _, order := range req.Services {
		ids = append(ids, order.ID)
	}

	catalog, err := uc.catalog.GetAdditionalServicesWithGracefulDegradation(ctx, req.FacilityID, ids)
	if err != nil {
		switch {
		case errors.Is(err, servicecatalog.ErrServiceDegraded):
			uc.logger.Warn("CalculatePrice: service catalog degraded, pricing facility=%s without services", req.FacilityID)
			return nil, true, nil
		case errors.Is(err, servicecatalog.ErrFacilityNotFound):
			return nil, false, fmt.Errorf("%w: facility %s has no services", ErrUnknownService, req.FacilityID)
		default:
			uc.logger.Error("CalculatePrice: failed to get services for facility=%s: %v", req.FacilityID, err)
			return nil, false, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
	}

	byID := make(map[string]servicecatalog.Service, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	services := make([]domain.AdditionalService, 0, len(req.Services))
	for _, order := range req.Services {
		s, ok := byID[order.ID]
		if !ok {
			uc.logger.Warn("CalculatePrice: service=%s not found for facility=%s", order.ID, req.FacilityID)
			return nil, false, fmt.Errorf("%w: %s", ErrUnknownService, order.ID)
		}
		services = append(services, domain.AdditionalService{
			ID:       s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Quantity: order.Quantity,
		})
	}

	return services, false, nil
}
