package routes

import (
	"device-checkout-backend/internal/api/handlers"
	"device-checkout-backend/internal/api/middleware"
	"device-checkout-backend/internal/auth"
	"device-checkout-backend/internal/clock"
	"device-checkout-backend/internal/config"
	"device-checkout-backend/internal/database/models"
	"device-checkout-backend/internal/events"
	"device-checkout-backend/internal/repository"
	"device-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the collaborators built outside the router
type Dependencies struct {
	// Publisher receives request events after commit; nil disables publishing
	Publisher events.Publisher
	// HealthChecks are reported by /health next to the database
	HealthChecks map[string]handlers.Pinger
	// Clock defaults to the system clock
	Clock clock.Clock
}

// RetryPolicyFromConfig builds the lock contention retry policy
func RetryPolicyFromConfig(cfg *config.Config) service.RetryPolicy {
	return service.RetryPolicy{
		MaxAttempts:    cfg.TransitionMaxAttempts,
		Backoff:        service.LinearBackoff(cfg.TransitionBackoffStep),
		AttemptTimeout: cfg.TransitionTxTimeout,
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) *gin.Engine {
	if deps.Clock == nil {
		deps.Clock = clock.NewSystem()
	}
	if deps.Publisher == nil {
		deps.Publisher = events.NopPublisher{}
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	deviceRepo := repository.NewDeviceRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	userRepo := repository.NewUserRepository(db)
	transitionRepo := repository.NewTransitionRepository(db, cfg.TransitionLockTimeout)

	// Initialize services
	retry := service.NewRetryCoordinator(RetryPolicyFromConfig(cfg))
	transitionService := service.NewTransitionService(transitionRepo, retry, deps.Clock, validator)
	deviceService := service.NewDeviceService(deviceRepo, requestRepo, validator)
	requestService := service.NewRequestService(requestRepo)
	userService := service.NewUserService(userRepo, validator)

	authMiddleware := auth.NewAuthMiddleware(auth.NewTokenService(cfg.JWTSecret))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, deps.HealthChecks)
	deviceHandler := handlers.NewDeviceHandler(deviceService)
	requestHandler := handlers.NewRequestHandler(transitionService, requestService, deps.Publisher)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	adminOnly := authMiddleware.RequireRole(models.UserRoleAdmin)
	approvers := authMiddleware.RequireRole(models.UserRoleManager, models.UserRoleAdmin)

	{
		v1.GET("/me", userHandler.GetCurrentUser)

		// Device routes
		devices := v1.Group("/devices")
		{
			devices.GET("", deviceHandler.ListDevices)
			devices.POST("", adminOnly, deviceHandler.CreateDevice)
			devices.GET("/:id", deviceHandler.GetDevice)
			devices.PUT("/:id", adminOnly, deviceHandler.UpdateDevice)
			devices.GET("/:id/history", deviceHandler.GetDeviceHistory)
			devices.POST("/:id/requests", requestHandler.SubmitRequest)
		}

		// Request routes
		requests := v1.Group("/requests")
		{
			requests.GET("", requestHandler.ListRequests)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.PUT("/:id/process", approvers, requestHandler.ProcessRequest)
			requests.PUT("/:id/cancel", requestHandler.CancelRequest)
		}

		// User administration
		users := v1.Group("/users", adminOnly)
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
		}

		admin := v1.Group("/admin", adminOnly)
		{
			admin.GET("/invariants", deviceHandler.CheckInvariants)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
