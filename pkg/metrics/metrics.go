package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ConflictChecksTotal    *prometheus.CounterVec
	ExpandedOccurrences    prometheus.Histogram
	PriceCalculationsTotal *prometheus.CounterVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge
}

// New создает и регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном registry (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		ConflictChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflict_checks_total",
			Help:        "Conflict checks by booking mode and outcome",
			ConstLabels: labels,
		}, []string{"mode", "result"}),
		ExpandedOccurrences: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "booking_proposed_occurrences",
			Help:        "Number of proposed occurrences materialized per conflict check",
			ConstLabels: labels,
			Buckets:     []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		PriceCalculationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_calculations_total",
			Help:        "Price calculations by pricing mode and outcome",
			ConstLabels: labels,
		}, []string{"mode", "result"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ConflictChecksTotal,
		m.ExpandedOccurrences,
		m.PriceCalculationsTotal,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
	)

	return m
}

// ObserveConflictCheck учитывает результат проверки конфликтов
// Метод безопасен для nil (метрики выключены)
func (m *Metrics) ObserveConflictCheck(mode string, hasConflict bool, proposedOccurrences int) {
	if m == nil {
		return
	}
	result := "free"
	if hasConflict {
		result = "conflict"
	}
	m.ConflictChecksTotal.WithLabelValues(mode, result).Inc()
	m.ExpandedOccurrences.Observe(float64(proposedOccurrences))
}

// ObservePriceCalculation учитывает результат расчёта цены
func (m *Metrics) ObservePriceCalculation(mode string, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "unavailable"
	}
	m.PriceCalculationsTotal.WithLabelValues(mode, result).Inc()
}
