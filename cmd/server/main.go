package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/dpetruk/schedpay/internal/adapter/http"
	"github.com/dpetruk/schedpay/internal/adapter/http/handler"
	"github.com/dpetruk/schedpay/internal/adapter/http/middleware"
	postgresRepo "github.com/dpetruk/schedpay/internal/adapter/repository/postgres"
	redisRepo "github.com/dpetruk/schedpay/internal/adapter/repository/redis"
	"github.com/dpetruk/schedpay/internal/infrastructure/config"
	"github.com/dpetruk/schedpay/internal/infrastructure/metrics"
	"github.com/dpetruk/schedpay/internal/infrastructure/postgres"
	"github.com/dpetruk/schedpay/internal/infrastructure/redis"
	"github.com/dpetruk/schedpay/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	scheduledPaymentRepo := postgresRepo.NewScheduledPaymentRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	m := metrics.New()

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, accountRepo, idGen, cache, m)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, idGen, m)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, idGen, retrier, m)
	schedulerUC := usecase.NewSchedulerUseCase(scheduledPaymentRepo, accountRepo, idGen, m)
	executorUC := usecase.NewExecutorUseCase(transferUC, schedulerUC, paymentRepo, idGen, m)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerUC)
	accountHandler := handler.NewAccountHandler(accountUC)
	transferHandler := handler.NewTransferHandler(transferUC)
	scheduledPaymentHandler := handler.NewScheduledPaymentHandler(schedulerUC)
	paymentHandler := handler.NewPaymentHandler(executorUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:         customerHandler,
		AccountHandler:          accountHandler,
		TransferHandler:         transferHandler,
		ScheduledPaymentHandler: scheduledPaymentHandler,
		PaymentHandler:          paymentHandler,
		LedgerHandler:           ledgerHandler,
		HealthHandler:           healthHandler,
		IdempotencyStore:        idempotencyStore,
		RateLimiter:             middleware.NewRateLimiter(100, 200),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
