package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/canteenhq/canteen-backend/internal/api"
	"github.com/canteenhq/canteen-backend/internal/middleware"
	"github.com/canteenhq/canteen-backend/internal/router"
	"github.com/canteenhq/canteen-backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// NewServer wires services into handlers and builds the HTTP stack.
func NewServer(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *Server {
	authService := service.NewAuthService(db, jwtSecret)

	handlers := router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Meal:      api.NewMealHandler(service.NewMealService(db)),
		Order:     api.NewOrderHandler(service.NewOrderService(db)),
		Inventory: api.NewInventoryHandler(service.NewInventoryService(db)),
		Payment:   api.NewPaymentHandler(service.NewPaymentService(db)),
		Feedback:  api.NewFeedbackHandler(service.NewFeedbackService(db)),
		Report:    api.NewReportHandler(service.NewReportService(db)),
	}

	var orderLimiter, paymentLimiter *middleware.RateLimiter
	if redisClient != nil {
		orderLimiter = middleware.NewOrderCreationRateLimiter(redisClient)
		paymentLimiter = middleware.NewPaymentRateLimiter(redisClient)
	}

	return &Server{
		router: router.SetupRouter(handlers, authService, orderLimiter, paymentLimiter),
	}
}

// Start starts the server and blocks until shutdown.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	go func() {
		log.Info().Str("port", port).Msg("starting server")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info().Msg("shutting down server")
	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
