package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudyFlow-2025/task-service/internal/config"
	"github.com/StudyFlow-2025/task-service/internal/events"
	"github.com/StudyFlow-2025/task-service/internal/handlers"
	"github.com/StudyFlow-2025/task-service/internal/repositories/blob"
	"github.com/StudyFlow-2025/task-service/internal/services"
	"github.com/StudyFlow-2025/task-service/internal/storage"
	"github.com/StudyFlow-2025/task-service/internal/utils"
	"github.com/StudyFlow-2025/task-service/internal/validator"
	"github.com/StudyFlow-2025/task-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize the blob store backend
	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize repositories
	repoManager := blob.NewManager(blob.RepositoryConfig{
		Store:     store,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize event publisher
	publisher, err := newPublisher(cfg, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	// Initialize validator
	validator := validator.New()

	// Initialize services
	serviceConfig := services.ServiceManagerConfig{
		LogLevel:            cfg.LogLevel,
		SeedDefaultAccounts: cfg.SeedDefaultAccounts,
		DefaultTimeout:      30 * time.Second,
	}
	serviceManager := services.NewServiceManager(repoManager.GetRepository(), publisher, slogLogger, validator, serviceConfig)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment, "storage", cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Shutdown services (closes the publisher and the store)
	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	logger.Info("Server exited")
}

// newStore selects the blob store backend from configuration.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverRedis:
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil
	case config.DriverPostgres:
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	default:
		return storage.NewMemoryStore(), nil
	}
}

// newPublisher selects Kafka when brokers are configured, the in-process
// channel otherwise.
func newPublisher(cfg *config.Config, logger *slog.Logger) (events.EventPublisher, error) {
	if len(cfg.KafkaBrokers) > 0 {
		return events.NewKafkaPublisher(cfg.KafkaBrokers, logger)
	}
	return events.NewGoChannelPublisher(logger), nil
}
