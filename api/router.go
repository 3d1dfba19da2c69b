package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dataset_explorer/internal/analytics"
	"dataset_explorer/internal/dataset"
	"dataset_explorer/web"
)

// InitRoutes registers the dashboard page and all API endpoints on the given
// Gin engine. It initializes the analytics service and handler over the
// provided storage, then binds each HTTP method and path to the appropriate
// handler function.
func InitRoutes(e *gin.Engine, storage dataset.Storage, manifest *dataset.Manifest, logger *zap.Logger) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	service := analytics.NewService(storage, logger)
	handler := NewDashboardHandler(service, manifest, logger)

	e.Use(RequestIDMiddleware(), LoggingMiddleware(logger))
	e.SetHTMLTemplate(web.Template())

	e.GET("/", handler.handleDashboard)

	apiGroup := e.Group("/api")
	apiGroup.GET("/info", handler.handleInfo)
	apiGroup.GET("/summary", handler.handleSummary)
	apiGroup.GET("/daily-revenue", handler.handleDailyRevenue)
	apiGroup.GET("/top-days", handler.handleTopDays)
	apiGroup.GET("/categories", handler.handleCategories)
	apiGroup.GET("/regions", handler.handleRegions)
	apiGroup.GET("/payments", handler.handlePayments)
	apiGroup.GET("/statuses", handler.handleStatuses)
	apiGroup.GET("/transactions", handler.handleTransactions)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
