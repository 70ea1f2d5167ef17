package router

import (
	"github.com/gin-gonic/gin"

	"github.com/canteenhq/canteen-backend/internal/api"
	"github.com/canteenhq/canteen-backend/internal/middleware"
	"github.com/canteenhq/canteen-backend/internal/service"
)

// Handlers bundles every API handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Meal      *api.MealHandler
	Order     *api.OrderHandler
	Inventory *api.InventoryHandler
	Payment   *api.PaymentHandler
	Feedback  *api.FeedbackHandler
	Report    *api.ReportHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, authService service.IAuthService, orderLimiter, paymentLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes
	h.Auth.RegisterRoutes(v1)
	v1.GET("/menu", h.Meal.ListMeals)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		h.Meal.RegisterRoutes(protected)
		h.Inventory.RegisterRoutes(protected)
		h.Feedback.RegisterRoutes(protected)
		h.Report.RegisterRoutes(protected)

		orders := protected.Group("")
		if orderLimiter != nil {
			orders.Use(orderLimiter.RateLimitMiddleware())
		}
		h.Order.RegisterRoutes(orders)

		payments := protected.Group("")
		if paymentLimiter != nil {
			payments.Use(paymentLimiter.RateLimitMiddleware())
		}
		h.Payment.RegisterRoutes(payments)
	}

	return router
}
