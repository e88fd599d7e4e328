package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Movement metrics
	MovementsCreated *prometheus.CounterVec
	MovementErrors   *prometheus.CounterVec
	MovementAmount   *prometheus.HistogramVec
	MovementDuration prometheus.Histogram

	// Account metrics
	AccountsOpened prometheus.Counter

	// Reconciliation metrics
	DriftedAccounts prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MovementsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kaalis_movements_created_total",
				Help: "Total completed money movements by kind",
			},
			[]string{"kind"},
		),
		MovementErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kaalis_movement_errors_total",
				Help: "Total movement failures by error type",
			},
			[]string{"error_type"},
		),
		MovementAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kaalis_movement_amount",
				Help:    "Movement amounts",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"kind"},
		),
		MovementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kaalis_movement_duration_seconds",
			Help:    "Duration of movement operations",
			Buckets: prometheus.DefBuckets,
		}),
		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kaalis_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		DriftedAccounts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "kaalis_drifted_accounts",
			Help: "Accounts whose cached balance disagrees with the entry log at last reconciliation",
		}),
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kaalis_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kaalis_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
