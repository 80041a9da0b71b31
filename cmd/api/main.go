package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secure-payment-gateway/config"
	httpHandler "secure-payment-gateway/internal/adapter/http/handler"
	pgStorage "secure-payment-gateway/internal/adapter/storage/postgres"
	redisStorage "secure-payment-gateway/internal/adapter/storage/redis"
	"secure-payment-gateway/internal/core/ports"
	"secure-payment-gateway/internal/provider"
	"secure-payment-gateway/internal/provider/card"
	"secure-payment-gateway/internal/provider/wallet"
	"secure-payment-gateway/internal/service"
	"secure-payment-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting billing core")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Ledger, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to ledger store")
		os.Exit(2)
	}
	defer pool.Close()
	log.Info().Msg("ledger store connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Cache, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to cache store")
		os.Exit(2)
	}
	defer rdb.Close()
	log.Info().Msg("cache store connected")

	// Repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	idempRepo := pgStorage.NewIdempotencyRepo(pool)
	apiKeyRepo := pgStorage.NewApiKeyRepo(pool)
	productRepo := pgStorage.NewProductRepo(pool)
	usageLogRepo := pgStorage.NewUsageLogRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)
	notificationRepo := pgStorage.NewNotificationRepository(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Cache-backed stores
	idempCache := redisStorage.NewIdempotencyCache(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)
	pendingStore := redisStorage.NewPendingPaymentStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Cross-cutting services
	hmacSvc := service.NewHMACService()
	auditSvc := service.NewAuditService(auditRepo, log)
	notifySvc := service.NewNotificationService(service.NewLogSink(log), notificationRepo, log)

	// Ledger services
	balanceSvc := service.NewBalanceService(txRepo, accountRepo, idempRepo, idempCache, transactor, log)
	usageSvc := service.NewUsageService(usageLogRepo, balanceSvc, productRepo, transactor, log)
	credSvc := service.NewCredentialService(apiKeyRepo, idempCache, hmacSvc, cfg.Server.Secret, log)

	// Provider adapters + orchestrator
	registerer := prometheus.NewRegistry()
	metrics := provider.NewMetrics(registerer)

	cardAdapter := card.NewAdapter(card.Config{
		APIKey:        cfg.Card.APIKey,
		WebhookSecret: cfg.Card.WebhookSecret,
		BaseURL:       cardBaseURL(cfg.Card.Env),
		Environment:   cfg.Card.Env,
	}, &http.Client{Timeout: 10 * time.Second}, log)

	walletAdapter := wallet.NewAdapter(wallet.Config{
		BotToken: cfg.Wallet.BotToken,
	}, pendingStore, log)

	providers := map[ports.ProviderName]ports.Provider{
		ports.ProviderCard:   cardAdapter,
		ports.ProviderWallet: walletAdapter,
	}
	orchestrator := provider.NewRegistry(providers, balanceSvc, pendingStore, nonceStore, notifySvc, metrics, log)

	// Health checkers
	ledgerHealth := pgStorage.NewHealthCheck(pool)
	cacheHealth := redisStorage.NewHealthCheck(rdb)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CredSvc:        credSvc,
		Orchestrator:   orchestrator,
		TxRepo:         txRepo,
		BalanceSvc:     balanceSvc,
		UsageLogRepo:   usageLogRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{ledgerHealth, cacheHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registerer, promhttp.HandlerOpts{})))

	// usageSvc has no route of its own: the metered API endpoints that
	// call ChargeProvisional/Settle/RefundProvisional belong to the
	// product surface embedding this core, not to this binary's own
	// HTTP table. It is constructed here so that surface has something
	// to embed.
	_ = usageSvc

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// cardBaseURL resolves the card provider's API base URL from its
// configured environment; real sandbox/live hosts are operator-supplied
// via deployment config in practice, this is the conservative default.
func cardBaseURL(env string) string {
	if env == "live" {
		return "https://api.cardprovider.example/v1"
	}
	return "https://sandbox.cardprovider.example/v1"
}
