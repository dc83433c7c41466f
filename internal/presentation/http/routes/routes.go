package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/georgekarlr/beauty-salon-sub000/internal/config"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/handler"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Checkout *handler.CheckoutHandler
	Sales    *handler.SalesHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.Use(middleware.AccountMiddleware())

		// Per-account rate limiter
		rateLimiter := middleware.NewAccountRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCheckoutRoutes(v1, h)
		registerSalesRoutes(v1, h)
	}

	return router
}

func registerCheckoutRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/checkout/sessions")
	sessions.Use(middleware.RequireAccount())
	{
		sessions.POST("", h.Checkout.Create)
		sessions.GET("/:id", h.Checkout.Get)
		sessions.DELETE("/:id", h.Checkout.Discard)
		sessions.POST("/:id/reset", h.Checkout.Reset)

		sessions.GET("/:id/customers", h.Checkout.SearchCustomers)
		sessions.POST("/:id/customer", h.Checkout.SelectCustomer)
		sessions.POST("/:id/appointment", h.Checkout.SelectAppointment)

		sessions.GET("/:id/catalog", h.Checkout.ReloadCatalog)
		sessions.POST("/:id/items", h.Checkout.AddItem)
		sessions.PUT("/:id/items/:kind/:itemID", h.Checkout.UpdateQuantity)
		sessions.DELETE("/:id/items/:kind/:itemID", h.Checkout.RemoveItem)

		sessions.POST("/:id/payment", h.Checkout.SetPayment)
		sessions.GET("/:id/payment/suggestions", h.Checkout.CashSuggestions)

		sessions.POST("/:id/advance", h.Checkout.Advance)
		sessions.POST("/:id/back", h.Checkout.Back)
		sessions.POST("/:id/commit", h.Checkout.Commit)
	}
}

func registerSalesRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	sales.Use(middleware.RequireAccount())
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.PUT("/:id/refund/items/:saleItemID", h.Sales.SetRefundQuantity)
		sales.PUT("/:id/refund/reason", h.Sales.SetRefundReason)
		sales.POST("/:id/refund", h.Sales.SubmitRefund)
		sales.DELETE("/:id/refund", h.Sales.CloseRefund)
	}
}
