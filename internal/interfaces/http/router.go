package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cbnu/subscribe-service/internal/infrastructure/ratelimit"
	"github.com/cbnu/subscribe-service/internal/interfaces/http/middleware"
	"github.com/cbnu/subscribe-service/internal/shared/constants"

	_ "github.com/cbnu/subscribe-service/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a router over a wired container.
func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.AccessLog(r.log))
	r.engine.Use(middleware.Metrics(r.metrics))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group(constants.APIPrefix)
	r.setupPointRoutes(api)
	r.setupSubscriptionRoutes(api)

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})
}

// writeLimit throttles mutating routes when a rate limiter is configured.
func (r *Router) writeLimit() gin.HandlerFunc {
	if r.rateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(r.rateLimiter, ratelimit.Limits{
		RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
	}, r.log)
}

func (r *Router) setupPointRoutes(api *gin.RouterGroup) {
	limit := r.writeLimit()

	api.POST("/register/point", limit, r.pointHandler.RegisterPoint)
	api.PUT("/recharge/point", limit, r.pointHandler.RechargePoint)
	api.PUT("/use/point", limit, r.pointHandler.UsePoint)
	api.POST("/present/point", limit, r.pointHandler.PresentPoint)
	api.GET("/load/point/:userId", r.pointHandler.LoadPoint)
	api.GET("/history/point/:userId", r.pointHandler.ListPointHistory)
}

func (r *Router) setupSubscriptionRoutes(api *gin.RouterGroup) {
	limit := r.writeLimit()

	api.POST("/register/subscription", limit, r.subscriptionHandler.RegisterSubscription)
	api.PUT("/renewal/subscription", limit, r.subscriptionHandler.RenewSubscription)
	api.DELETE("/terminate/subscription", limit, r.subscriptionHandler.TerminateSubscription)
	api.POST("/verify/subscription", r.subscriptionHandler.VerifySubscription)
	api.GET("/load/subscription/:userId", r.subscriptionHandler.LoadSubscription)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
