package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/dpetruk/schedpay/internal/adapter/http/handler"
	"github.com/dpetruk/schedpay/internal/adapter/http/middleware"
	"github.com/dpetruk/schedpay/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler         *handler.CustomerHandler
	AccountHandler          *handler.AccountHandler
	TransferHandler         *handler.TransferHandler
	ScheduledPaymentHandler *handler.ScheduledPaymentHandler
	PaymentHandler          *handler.PaymentHandler
	LedgerHandler           *handler.LedgerHandler
	HealthHandler           *handler.HealthHandler
	IdempotencyStore        usecase.IdempotencyStore
	RateLimiter             *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(log.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Customers
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Put("/{id}/default-account", cfg.CustomerHandler.SetDefaultAccount)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/number/{number}", cfg.AccountHandler.GetByNumber)
			r.Get("/{id}/transfers", cfg.TransferHandler.ListByAccount)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Get("/{id}", cfg.TransferHandler.Get)
		})

		// Scheduled payments
		r.Route("/scheduled-payments", func(r chi.Router) {
			r.Post("/", cfg.ScheduledPaymentHandler.Create)
			r.Get("/", cfg.ScheduledPaymentHandler.List)
			r.Get("/due", cfg.ScheduledPaymentHandler.Due)
			r.Get("/{id}", cfg.ScheduledPaymentHandler.Get)
			r.Delete("/{id}", cfg.ScheduledPaymentHandler.Delete)
			r.Get("/{id}/payments", cfg.PaymentHandler.ListByScheduledPayment)
		})

		// Payments
		r.Route("/payments", func(r chi.Router) {
			r.Post("/run", cfg.PaymentHandler.Run)
			r.Get("/{id}", cfg.PaymentHandler.Get)
		})

		// Ledger
		r.Get("/ledger/consistency", cfg.LedgerHandler.Consistency)
	})

	return r
}
