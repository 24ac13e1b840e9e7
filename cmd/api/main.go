package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dulllu/netsasa/config"
	"github.com/Dulllu/netsasa/internal/adapter/gateway/lipana"
	httpHandler "github.com/Dulllu/netsasa/internal/adapter/http/handler"
	memStorage "github.com/Dulllu/netsasa/internal/adapter/storage/memory"
	pgStorage "github.com/Dulllu/netsasa/internal/adapter/storage/postgres"
	redisStorage "github.com/Dulllu/netsasa/internal/adapter/storage/redis"
	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/internal/service"
	"github.com/Dulllu/netsasa/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting NETSASA payment backend")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client (rate limiting; the API stays up without it)
	var rateLimitStore *redisStorage.RateLimitStore
	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
		log.Info().Msg("Redis connected")
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize repositories
	registry := memStorage.NewCheckoutRegistry(cfg.Checkout.Retention, log)
	defer registry.Close()
	txRepo := pgStorage.NewTransactionRepo(pool)
	ledgerRepo := pgStorage.NewLedgerRepo(pool)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Vendor.JWTSecret, cfg.Vendor.JWTExpiry, cfg.Vendor.JWTIssuer)

	gateway := lipana.NewClient(cfg.Gateway, log)
	notifier := service.NewBroadcastNotifier(log)
	scheduler := service.NewAutoCancelScheduler(cfg.Checkout.AutoCancelDelay, log)
	defer scheduler.Close()
	activator := service.NewPortalSessionActivator(
		cfg.Session.ActivationURL,
		&http.Client{Timeout: cfg.Session.Timeout},
		log,
	)

	// Initialize business services
	checkoutSvc := service.NewCheckoutService(
		registry, txRepo, gateway, scheduler, notifier,
		domain.DefaultCatalog(), cfg.Gateway.AccountReference, log,
	)
	scheduler.SetExpireFunc(checkoutSvc.Expire)
	webhookSvc := service.NewWebhookService(
		registry, txRepo, scheduler, notifier, activator, ledgerRepo,
		sigSvc, cfg.Webhook.Secret, cfg.Webhook.VerifySignature, log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:        checkoutSvc,
		WebhookSvc:         webhookSvc,
		Notifier:           notifier,
		Catalog:            domain.DefaultCatalog(),
		TransactionRepo:    txRepo,
		HashSvc:            hashSvc,
		TokenSvc:           tokenSvc,
		RateLimitStore:     rateLimitStore,
		HealthCheckers:     healthCheckers,
		AllowedOrigins:     cfg.CORS.AllowedOrigins,
		StreamIdleTimeout:  cfg.Checkout.StreamIdleTimeout,
		StreamMaxPings:     cfg.Checkout.StreamMaxPings,
		VendorUsername:     cfg.Vendor.Username,
		VendorPasswordHash: cfg.Vendor.PasswordHash,
		Logger:             log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Let in-flight success effects (session activation, loyalty ledger)
	// finish before the process exits.
	webhookSvc.Flush()

	log.Info().Msg("Server exited")
}
