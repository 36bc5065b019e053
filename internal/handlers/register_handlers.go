package handlers

import (
	"net/http"

	"github.com/SscSPs/ops_backend/cmd/docs"
	portssvc "github.com/SscSPs/ops_backend/internal/core/ports/services"
	"github.com/SscSPs/ops_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteOptions carries the optional infrastructure mounted next to the API.
type RouteOptions struct {
	// ReportLimiter throttles POST /reports. Nil disables throttling.
	ReportLimiter *limiter.Limiter
	// MetricsHandler is served at /metrics when non-nil.
	MetricsHandler http.Handler
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouteOptions,
) {
	api := r.Group(cfg.APIPrefix)

	api.GET("/health", healthCheck(services.Health))
	registerTicketRoutes(api, services.Ticket)
	registerReportRoutes(api, services.Reporting, cfg.APIPrefix, opts.ReportLimiter)

	if opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = cfg.APIPrefix
	if docs.SwaggerInfo.BasePath == "" {
		docs.SwaggerInfo.BasePath = "/"
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
