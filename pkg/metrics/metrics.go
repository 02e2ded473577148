// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBTransactionsTotal *prometheus.CounterVec

	// Бизнес-метрики
	BookingsCreatedTotal  prometheus.Counter
	PaymentsRecordedTotal *prometheus.CounterVec
	PaymentsAmountTotal   prometheus.Counter
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),

		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),

		DBTransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of database transactions by outcome",
			ConstLabels: constLabels,
		}, []string{"isolation", "status"}),

		BookingsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rental_bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: constLabels,
		}),

		PaymentsRecordedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rental_payments_total",
			Help:        "Total number of recorded and reversed payments",
			ConstLabels: constLabels,
		}, []string{"method", "action"}),

		PaymentsAmountTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rental_payments_amount_total",
			Help:        "Sum of recorded payment amounts",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBTransactionsTotal,
		m.BookingsCreatedTotal,
		m.PaymentsRecordedTotal,
		m.PaymentsAmountTotal,
	)

	return m
}

// BookingCreated учитывает созданное бронирование (nil-safe)
func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.Inc()
}

// PaymentRecorded учитывает принятый платёж (nil-safe)
func (m *Metrics) PaymentRecorded(method string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.PaymentsRecordedTotal.WithLabelValues(method, "recorded").Inc()
	m.PaymentsAmountTotal.Add(amount.InexactFloat64())
}

// PaymentReversed учитывает отмену платежа (nil-safe)
func (m *Metrics) PaymentReversed(method string) {
	if m == nil {
		return
	}
	m.PaymentsRecordedTotal.WithLabelValues(method, "reversed").Inc()
}
