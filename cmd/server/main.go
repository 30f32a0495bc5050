package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"device-checkout-backend/internal/api/handlers"
	"device-checkout-backend/internal/api/routes"
	"device-checkout-backend/internal/config"
	"device-checkout-backend/internal/database"
	"device-checkout-backend/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "device-checkout-backend/docs" // This is needed for swag
)

//	@title			Device Checkout API
//	@version		1.0
//	@description	Device checkout workflow: users request devices, managers approve or reject, every transition is serialized per device.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	dbOpts := &database.Options{}
	if cfg.LogLevel == "debug" {
		dbOpts.LogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOpts)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	deps, closeEvents := setupEvents(cfg)
	defer closeEvents()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, deps)

	port := cfg.Port
	logrus.WithFields(logrus.Fields{
		"port":           port,
		"max_attempts":   cfg.TransitionMaxAttempts,
		"backoff_step":   cfg.TransitionBackoffStep.String(),
		"lock_timeout":   cfg.TransitionLockTimeout.String(),
		"attempt_budget": cfg.TransitionTxTimeout.String(),
	}).Info("Starting server")
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
		return
	case <-stopCtx.Done():
		logrus.Info("Shutdown signal received, draining in-flight requests")
	}

	// In-flight transitions finish or roll back before the pool closes
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.TransitionTxTimeout+5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Error("Server shutdown error")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}

// setupEvents wires the request event publisher. Events are dropped when no redis is configured.
func setupEvents(cfg *config.Config) (routes.Dependencies, func()) {
	if !cfg.EventsEnabled() {
		logrus.Info("REDIS_ADDR not set, request events are disabled")
		return routes.Dependencies{Publisher: events.NopPublisher{}}, func() {}
	}

	rdb, err := events.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logrus.Fatal("Failed to connect to redis:", err)
	}
	logrus.WithField("channel", cfg.EventsChannel).Info("Publishing request events to redis")

	deps := routes.Dependencies{
		Publisher: events.NewRedisPublisher(rdb, cfg.EventsChannel),
		HealthChecks: map[string]handlers.Pinger{
			"redis": handlers.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
	}
	return deps, func() { _ = rdb.Close() }
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown LOG_LEVEL, falling back to info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
