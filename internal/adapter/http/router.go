package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mbaye/kaalis/internal/adapter/http/handler"
	"github.com/mbaye/kaalis/internal/adapter/http/middleware"
	"github.com/mbaye/kaalis/internal/infrastructure/metrics"
	"github.com/mbaye/kaalis/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	TransferHandler  *handler.TransferHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Open)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/balance", cfg.AccountHandler.GetBalance)
			r.Get("/{id}/entries", cfg.AccountHandler.ListEntries)
			r.Post("/{id}/deposit", cfg.TransferHandler.Deposit)
			r.Post("/{id}/pay", cfg.TransferHandler.Pay)
			r.Post("/{id}/transfer", cfg.TransferHandler.Transfer)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Get("/{id}", cfg.TransferHandler.Get)
			r.Get("/{id}/entries", cfg.TransferHandler.Entries)
		})

		// Ledger consistency
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/consistency", cfg.LedgerHandler.Consistency)
			r.Get("/report", cfg.LedgerHandler.Report)
			r.Get("/accounts/{id}/reconciliation", cfg.LedgerHandler.ReconcileAccount)
			r.Post("/accounts/{id}/repair", cfg.LedgerHandler.RepairAccount)
		})
	})

	return r
}
