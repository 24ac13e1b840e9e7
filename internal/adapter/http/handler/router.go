package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/adapter/http/middleware"
	redisStore "github.com/Dulllu/netsasa/internal/adapter/storage/redis"
	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/response"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CheckoutSvc ports.CheckoutService
	WebhookSvc  ports.WebhookService
	Notifier    ports.StatusNotifier
	Catalog     domain.Catalog

	TransactionRepo ports.TransactionRepository
	HashSvc         ports.HashService
	TokenSvc        ports.TokenService

	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker

	AllowedOrigins     []string
	StreamIdleTimeout  time.Duration
	StreamMaxPings     int
	VendorUsername     string
	VendorPasswordHash string

	Logger zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"service": "netsasa", "status": "running"})
	})

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

	paymentHandler := NewPaymentHandler(deps.CheckoutSvc, deps.Catalog)
	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	streamHandler := NewStreamHandler(deps.CheckoutSvc, deps.Notifier, deps.StreamIdleTimeout, deps.StreamMaxPings)

	api := r.Group("/api")
	{
		api.POST("/pay", rl("pay"), paymentHandler.Pay)
		api.GET("/check/:checkout_id", rl("check"), paymentHandler.Check)
		api.GET("/stream/:checkout_id", streamHandler.Stream)
		api.GET("/transactions/:phone", paymentHandler.Transactions)
		api.GET("/packages", paymentHandler.Packages)

		// Gateway callback; authenticated by signature, not session.
		api.POST("/webhook", webhookHandler.Handle)
	}

	vendorHandler := NewVendorHandler(
		deps.TransactionRepo, deps.HashSvc, deps.TokenSvc,
		deps.VendorUsername, deps.VendorPasswordHash, deps.Logger,
	)
	vendor := r.Group("/api/vendor")
	{
		vendor.POST("/login", rl("vendor_login"), vendorHandler.Login)

		authed := vendor.Group("", middleware.JWTAuth(deps.TokenSvc, deps.Logger), rl("vendor"))
		{
			authed.GET("/stats", vendorHandler.Stats)
			authed.GET("/transactions", vendorHandler.Transactions)
		}
	}

	return r
}
