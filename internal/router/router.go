package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/config"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/handler"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/middleware"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/repository"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/service"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"

	"github.com/rs/zerolog/log"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *storage.DB, rdb *redis.Client, resetMailer service.ResetMailer) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository()
	inboundRepo := repository.NewInboundRepository(db)
	outboundRepo := repository.NewOutboundRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tokenTTL := time.Duration(cfg.JWTExpirationHours) * time.Hour
	authSvc := service.NewAuthService(userRepo, rdb, resetMailer, cfg.JWTSecret, tokenTTL, cfg.PublicURL, log.Logger)
	inboundSvc := service.NewInboundService(db, inboundRepo, productRepo, log.Logger)
	outboundSvc := service.NewOutboundService(db, outboundRepo, inboundRepo, productRepo, log.Logger)
	inventorySvc := service.NewInventoryService(inventoryRepo, orderRepo)
	orderSvc := service.NewOrderService(orderRepo)
	trackingSvc := service.NewTrackingService(trackingRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	inboundH := handler.NewInboundHandler(inboundSvc)
	outboundH := handler.NewOutboundHandler(outboundSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	ordersH := handler.NewOrderHandler(orderSvc)
	trackingH := handler.NewTrackingHandler(trackingSvc)
	statsH := handler.NewStatsHandler(inventorySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/api/health", handler.Health(db, rdb))
	r.GET("/api/version", handler.VersionInfo(db))
	r.GET("/api/tracking/:trackingNumber", trackingH.Track)

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/forgot-password", authH.ForgotPassword)
		auth.POST("/reset-password/:token", authH.ResetPassword)
	}

	// Logout needs the token being revoked
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, rdb)
	r.POST("/api/auth/logout", jwtMW, authH.Logout)

	// Admin console — everything below requires an admin token
	admin := r.Group("/api/admin", jwtMW, middleware.RequireRole("admin"))
	{
		admin.GET("/stats", statsH.Stats)

		admin.POST("/inbound", inboundH.Receive)
		admin.GET("/inbound", inboundH.List)
		admin.GET("/inbound/:inboundNumber", inboundH.Detail)
		admin.POST("/inbound/batch-status", inboundH.BatchStatus)
		admin.POST("/inbound/batch-delete", inboundH.BatchDelete)

		admin.POST("/outbound", outboundH.Ship)
		admin.GET("/outbound", outboundH.List)
		admin.GET("/outbound/:outboundNumber", outboundH.Detail)
		admin.POST("/outbound/batch-status", outboundH.BatchStatus)
		admin.POST("/outbound/batch-delete", outboundH.BatchDelete)

		admin.GET("/inventory", inventoryH.List)
		admin.GET("/inventory/categories", inventoryH.Categories)
		admin.GET("/inventory/:sku", inventoryH.Detail)

		admin.GET("/orders", ordersH.List)
		admin.GET("/orders/:orderNumber", ordersH.Detail)
		admin.POST("/orders/batch-status", ordersH.BatchStatus)
		admin.POST("/orders/batch-delete", ordersH.BatchDelete)
	}

	// API docs — not exposed in production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
