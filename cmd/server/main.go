package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/mbaye/kaalis/internal/adapter/http"
	"github.com/mbaye/kaalis/internal/adapter/http/handler"
	"github.com/mbaye/kaalis/internal/adapter/notification"
	postgresRepo "github.com/mbaye/kaalis/internal/adapter/repository/postgres"
	redisRepo "github.com/mbaye/kaalis/internal/adapter/repository/redis"
	"github.com/mbaye/kaalis/internal/infrastructure/config"
	"github.com/mbaye/kaalis/internal/infrastructure/logger"
	"github.com/mbaye/kaalis/internal/infrastructure/metrics"
	"github.com/mbaye/kaalis/internal/infrastructure/postgres"
	"github.com/mbaye/kaalis/internal/infrastructure/redis"
	"github.com/mbaye/kaalis/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	poolCtx, cancelPool := context.WithTimeout(ctx, cfg.DatabaseTimeout)
	pool, err := postgres.NewPool(poolCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	cancelPool()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	directoryRepo := postgresRepo.NewDirectoryRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)

	notifier := notification.NewSMSNotifier(appLogger)

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, entryRepo, idGen, retrier, cache)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, entryRepo, directoryRepo, ledgerUC, idGen, retrier)
	accountUC := usecase.NewAccountUseCase(accountRepo, entryRepo, idGen, cache, notifier, cfg.DefaultCurrency)
	reconciliationUC := usecase.NewReconciliationUseCase(txManager, accountRepo, entryRepo, ledgerRepo)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	transferHandler := handler.NewTransferHandler(transferUC, ledgerUC)
	ledgerHandler := handler.NewLedgerHandler(reconciliationUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   accountHandler,
		TransferHandler:  transferHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          metrics.New(),
		Logger:           appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
