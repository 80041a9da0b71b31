package handler

import (
	"secure-payment-gateway/internal/adapter/http/middleware"
	redisStore "secure-payment-gateway/internal/adapter/storage/redis"
	"secure-payment-gateway/internal/core/domain"
	"secure-payment-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CredSvc        ports.CredentialService
	Orchestrator   ports.Orchestrator
	TxRepo         ports.TransactionRepository
	BalanceSvc     ports.BalanceService
	UsageLogRepo   ports.UsageLogRepository
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Auth helper: api key auth scoped to a required capability.
	auth := func(scope domain.ApiKeyScope) gin.HandlerFunc {
		return middleware.ApiKeyAuth(deps.CredSvc, scope, deps.Logger)
	}

	paymentHandler := NewPaymentHandler(deps.Orchestrator, deps.TxRepo)
	webhookHandler := NewWebhookHandler(deps.Orchestrator)
	balanceHandler := NewBalanceHandler(deps.BalanceSvc)
	usageHandler := NewUsageHandler(deps.UsageLogRepo)
	apiKeyHandler := NewApiKeyHandler(deps.CredSvc)

	// --- Payments (API-key authenticated, usage:write scope) ---
	payment := r.Group("/payment", auth(domain.ScopeUsageWrite))
	{
		payment.POST("/topup", rl("topup"), paymentHandler.Topup)
		payment.GET("/:id", paymentHandler.GetPayment)
	}

	// --- Webhooks (provider-verified, not API-key authenticated) ---
	r.POST("/webhooks/:provider", rl("webhooks"), webhookHandler.Handle)

	// --- Balance / usage (API-key authenticated, balance:read scope) ---
	r.GET("/balance", auth(domain.ScopeBalanceRead), rl("balance"), balanceHandler.GetBalance)
	r.GET("/usage", auth(domain.ScopeBalanceRead), rl("usage"), usageHandler.GetUsage)

	// --- API key management (API-key authenticated, admin scope) ---
	apiKeys := r.Group("/api_keys", auth(domain.ScopeAdmin))
	{
		apiKeys.POST("", rl("api_keys"), apiKeyHandler.Create)
		apiKeys.GET("", rl("api_keys"), apiKeyHandler.List)
		apiKeys.DELETE("/:prefix", rl("api_keys"), apiKeyHandler.Revoke)
	}

	return r
}
