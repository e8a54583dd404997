// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AtRiskMedia/sitegen-go/internal/application/container"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/metrics"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/http/handlers"
	"github.com/AtRiskMedia/sitegen-go/internal/presentation/http/middleware"
	"github.com/AtRiskMedia/sitegen-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(container.Logger))
	r.Use(middleware.CORSMiddleware(config.CORSOrigins))

	// Initialize handlers
	siteHandlers := handlers.NewSiteHandlers(container.SiteGenerator, container.Builds, container.Logger, container.PerfTracker, config.MaxProjectBytes)
	systemHandlers := handlers.NewSystemHandlers(container.Builds, container.Logger, container.PerfTracker)

	r.GET("/health", systemHandlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.HTTPHandler(container.Registry)))

	api := r.Group("/api/v1")
	{
		sites := api.Group("/sites")
		{
			sites.POST("/generate", siteHandlers.GenerateSite)
			sites.GET("/builds", siteHandlers.ListBuilds)
			sites.GET("/builds/:id", siteHandlers.GetBuild)
			sites.GET("/builds/:id/archive", siteHandlers.DownloadArchive)
			sites.GET("/builds/:id/files/*path", siteHandlers.GetFile)
		}

		system := api.Group("/system")
		{
			system.GET("/performance", systemHandlers.GetPerformance)
			system.GET("/logs/levels", systemHandlers.GetLogLevels)
			system.POST("/logs/levels", systemHandlers.SetLogLevel)
		}
	}

	return r
}
