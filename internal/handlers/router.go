package handlers

import (
	"net/http"

	"github.com/edufi/quiz-grading-service/internal/services"
	"github.com/edufi/quiz-grading-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	gradingHandler *GradingHandler
}

func NewHandlerManager(
	gradingService services.GradingService,
	publicSpecSvc services.PublicSpecService,
	exportService services.ExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		gradingHandler: NewGradingHandler(gradingService, publicSpecSvc, exportService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Wrong method or unknown path gets the 404 envelope the embedding
	// service expects, not gin's default plain-text response.
	router.NoRoute(notFound)
	router.NoMethod(notFound)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/grade", hm.gradingHandler.Grade)
		v1.POST("/public-spec", hm.gradingHandler.PublicSpec)
		v1.POST("/model-solution", hm.gradingHandler.ModelSolution)

		// Audit routes
		v1.GET("/gradings", hm.gradingHandler.ListGradings)
		v1.GET("/gradings/export", hm.gradingHandler.ExportGradings)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "quiz-grading-service",
		})
	})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"message": "Not found",
	})
}
