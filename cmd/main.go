package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	calculatePriceHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/calculate_price"
	checkConflictHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/check_conflict"
	getAlternativeZonesHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_alternative_zones"
	getZoneAvailabilityHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_zone_availability"
	previewRecurrenceHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/preview_recurrence"
	searchFacilitiesHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/search_facilities"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/config"
	priceTablesCache "github.com/m04kA/SMC-FacilityBooking/internal/infra/cache/pricetables"
	bookingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/facility"
	pricingRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/pricing"
	zoneRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/zone"
	serviceCatalogClient "github.com/m04kA/SMC-FacilityBooking/internal/integrations/servicecatalog"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/availability"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/pricing"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/timeslots"
	calculatePriceUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/calculate_price"
	checkConflictUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/check_conflict"
	getAlternativeZonesUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_alternative_zones"
	getZoneAvailabilityUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_zone_availability"
	previewRecurrenceUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/preview_recurrence"
	searchFacilitiesUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/search_facilities"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FacilityBooking...")

	// Validate уже проверил часовой пояс и даты праздников
	location, _ := cfg.Booking.Location()
	extraHolidays, _ := cfg.Holidays.Dates()

	// Инициализируем метрики (если включены), nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	zoneRepository := zoneRepo.NewRepository(wrappedDB)
	facilityRepository := facilityRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)

	// Ценовые таблицы: через redis, если он настроен
	var priceTables pricing.PriceTables = pricingRepository
	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("Invalid redis url: %v", err)
		}
		redisClient := redis.NewClient(redisOpts)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Недоступный redis не блокирует старт: кеш сам уходит в БД при ошибках
			log.Warn("Redis ping failed, price tables will be read from database until it recovers: %v", err)
		}
		cancel()

		priceTables = priceTablesCache.New(pricingRepository, redisClient, time.Duration(cfg.Redis.CacheTTL)*time.Second, log)
		log.Info("Price table cache enabled (ttl=%ds)", cfg.Redis.CacheTTL)
	}

	// Интеграции
	catalogClient := serviceCatalogClient.NewClient(
		cfg.ServiceCatalog.URL,
		time.Duration(cfg.ServiceCatalog.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ServiceCatalog=%s timeout=%ds)",
		cfg.ServiceCatalog.URL, cfg.ServiceCatalog.Timeout)

	// Доменные сервисы
	timeslotSvc := timeslots.NewService(log)

	conflictSvc := conflicts.NewService(timeslotSvc, log)
	conflictSvc.Horizon = cfg.Booking.Horizon()
	conflictSvc.MaxOccurrences = cfg.Booking.MaxOccurrences

	availabilitySvc := availability.NewService(timeslotSvc, log)

	pricingSvc := pricing.NewService(priceTables, calendar.New(extraHolidays), pricing.Settings{
		DefaultBasePricePerHour: cfg.Pricing.DefaultBasePricePerHour,
		VATRate:                 cfg.Pricing.VATRate,
		Surcharges: pricing.Surcharges{
			EveningPercent: cfg.Pricing.EveningSurchargePercent,
			NightPercent:   cfg.Pricing.NightSurchargePercent,
			WeekendPercent: cfg.Pricing.WeekendSurchargePercent,
			HolidayPercent: cfg.Pricing.HolidaySurchargePercent,
		},
	}, log)

	// Use cases
	checkConflictUseCase := checkConflictUC.NewUseCase(
		bookingRepository,
		zoneRepository,
		facilityRepository,
		conflictSvc,
		txMgr,
		metricsCollector,
		log,
		cfg.Booking.MaxOccurrences,
	)

	getZoneAvailabilityUseCase := getZoneAvailabilityUC.NewUseCase(
		bookingRepository,
		zoneRepository,
		facilityRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	getAlternativeZonesUseCase := getAlternativeZonesUC.NewUseCase(
		bookingRepository,
		zoneRepository,
		facilityRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		facilityRepository,
		catalogClient,
		pricingSvc,
		metricsCollector,
		log,
	)

	searchFacilitiesUseCase := searchFacilitiesUC.NewUseCase(facilityRepository, log)
	previewRecurrenceUseCase := previewRecurrenceUC.NewUseCase(timeslotSvc, log, cfg.Booking.MaxOccurrences)

	// Handlers
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, location, log)
	getZoneAvailability := getZoneAvailabilityHandler.NewHandler(getZoneAvailabilityUseCase, location, log)
	getAlternativeZones := getAlternativeZonesHandler.NewHandler(getAlternativeZonesUseCase, location, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, location, log)
	searchFacilities := searchFacilitiesHandler.NewHandler(searchFacilitiesUseCase, log)
	previewRecurrence := previewRecurrenceHandler.NewHandler(previewRecurrenceUseCase, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Объекты ---
	api.HandleFunc("/facilities", searchFacilities.Handle).Methods(http.MethodGet)

	// --- Конфликты и доступность ---
	api.HandleFunc("/facilities/{facilityId}/conflicts/check", checkConflict.Handle).Methods(http.MethodPost)
	api.HandleFunc("/facilities/{facilityId}/zones/availability", getZoneAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/zones/{zoneId}/alternatives", getAlternativeZones.Handle).Methods(http.MethodGet)

	// --- Цена ---
	api.HandleFunc("/facilities/{facilityId}/price", calculatePrice.Handle).Methods(http.MethodPost)

	// --- Повторения ---
	api.HandleFunc("/recurrence/preview", previewRecurrence.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
