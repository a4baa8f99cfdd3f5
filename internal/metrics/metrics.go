package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business Metrics
	TransactionsCreated  *prometheus.CounterVec
	StatusTransitions    *prometheus.CounterVec
	StockDecrements      prometheus.Counter
	ReconcilerSweepTotal *prometheus.CounterVec

	// Gateway Metrics
	GatewayRequestDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_transactions_created_total",
				Help: "Transactions created, labeled by their first observed status",
			},
			[]string{"status"},
		),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_transaction_status_transitions_total",
				Help: "Status transitions out of PENDING",
			},
			[]string{"status"},
		),
		StockDecrements: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_stock_decrements_total",
				Help: "Stock decrements applied on approved transactions",
			},
		),
		ReconcilerSweepTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_reconciler_transactions_total",
				Help: "Transactions examined by the reconciliation sweep, by outcome",
			},
			[]string{"outcome"},
		),
		GatewayRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_gateway_request_duration_seconds",
				Help:    "Duration of payment gateway calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "outcome"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordTransactionCreated(status string) {
	m.TransactionsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordStatusTransition(status string) {
	m.StatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordStockDecrement() {
	m.StockDecrements.Inc()
}

func (m *Metrics) RecordReconcilerOutcome(outcome string) {
	m.ReconcilerSweepTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordGatewayRequest(operation, outcome string, duration time.Duration) {
	m.GatewayRequestDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}
