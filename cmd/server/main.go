package main

import (
	"log"

	"github.com/edufi/quiz-grading-service/internal/cache"
	"github.com/edufi/quiz-grading-service/internal/config"
	"github.com/edufi/quiz-grading-service/internal/events"
	"github.com/edufi/quiz-grading-service/internal/handlers"
	"github.com/edufi/quiz-grading-service/internal/models"
	"github.com/edufi/quiz-grading-service/internal/repositories"
	"github.com/edufi/quiz-grading-service/internal/repositories/postgres"
	"github.com/edufi/quiz-grading-service/internal/services"
	"github.com/edufi/quiz-grading-service/internal/utils"
	"github.com/edufi/quiz-grading-service/internal/validator"
	"github.com/edufi/quiz-grading-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	// The audit store is optional: without DATABASE_URL the service grades
	// statelessly.
	var auditRepo repositories.GradingAuditRepository
	if cfg.DatabaseURL != "" {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("database initialization failed: %v", err)
		}
		if err := db.AutoMigrate(&models.GradingAuditRecord{}); err != nil {
			logger.Error("Failed to migrate database schema", "error", err)
			log.Fatalf("database migration failed: %v", err)
		}
		auditRepo = postgres.NewGradingAuditPostgreSQL(db)
		logger.Info("Grading audit store enabled")
	} else {
		logger.Info("DATABASE_URL not set, grading audit store disabled")
	}

	// Redis is equally optional; without it public-spec conversions are
	// recomputed per request.
	var cacheService cache.CacheService = cache.NoopCache{}
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without public spec cache", "error", err)
		} else {
			cacheService = cache.NewRedisCache(redisClient, logger)
			logger.Info("Public spec cache enabled")
		}
	}

	slogLogger := utils.ToSlogLogger(logger)
	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Error("Failed to create event publisher, falling back to mock", "error", err)
		publisher = events.NewMockEventPublisher(slogLogger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	v := validator.New()

	gradingService := services.NewGradingService(auditRepo, publisher, logger, v)
	publicSpecService := services.NewPublicSpecService(cacheService, logger)
	exportService := services.NewExportService(auditRepo, logger)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(utils.LoggerMiddleware(logger), gin.Recovery())

	handlerManager := handlers.NewHandlerManager(gradingService, publicSpecService, exportService, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting quiz grading service",
		"port", cfg.Port,
		"environment", cfg.Environment)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
