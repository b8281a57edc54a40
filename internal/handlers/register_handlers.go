package handlers

import (
	"github.com/SscSPs/tally_cloud_sync/cmd/docs"
	portssvc "github.com/SscSPs/tally_cloud_sync/internal/core/ports/services"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Dependencies carries the optional infrastructure the routes need beyond
// the service container.
type Dependencies struct {
	// SyncLimiter throttles the sync endpoints per client IP. Nil disables it.
	SyncLimiter *limiter.Limiter
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/", getHome)
	r.GET("/health", healthCheck(services.Health))
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	setupAPIRoutes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group. Only the sync writes require the
// agent token; reads are public.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps Dependencies,
) {
	api := r.Group("/api")

	syncGroup := api.Group("/sync",
		middleware.RateLimit(deps.SyncLimiter),
		middleware.AgentTokenAuth(cfg.AgentToken),
	)
	registerSyncRoutes(syncGroup, service.Sync)

	registerRecordRoutes(api, service.Record)
	registerReportingRoutes(api, service.Company, service.Reporting)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, middleware.AgentTokenHeader, "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID"}
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
