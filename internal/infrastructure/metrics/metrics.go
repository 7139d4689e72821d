package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCreated prometheus.Counter
	TransferDuration prometheus.Histogram
	TransferAmount   prometheus.Histogram
	TransferErrors   *prometheus.CounterVec

	// Payment metrics
	PaymentsExecuted *prometheus.CounterVec
	PaymentsDue      prometheus.Histogram
	SchedulerRuns    prometheus.Counter

	// Account metrics
	AccountsCreated  prometheus.Counter
	CustomersCreated prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schedpay_transfers_created_total",
			Help: "Total number of transfers created",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schedpay_transfer_duration_seconds",
			Help:    "Duration of transfer operations",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schedpay_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schedpay_transfer_errors_total",
				Help: "Total number of failed transfers by reason",
			},
			[]string{"reason"},
		),
		PaymentsExecuted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schedpay_payments_executed_total",
				Help: "Total number of scheduled payment executions by result",
			},
			[]string{"result"},
		),
		PaymentsDue: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "schedpay_payments_due",
			Help:    "Number of due scheduled payments per scheduler query",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		SchedulerRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schedpay_scheduler_runs_total",
			Help: "Total number of scheduler batch runs",
		}),
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schedpay_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		CustomersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "schedpay_customers_created_total",
			Help: "Total number of customers created",
		}),
	}
}
