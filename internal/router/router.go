package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"ledgerly/internal/handler"
	"ledgerly/internal/metrics"
	"ledgerly/internal/middleware"
	"ledgerly/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Import *handler.ImportHandler
	Master *handler.MasterHandler
	Health *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	log *zap.Logger,
	allowedOrigins []string,
	authSvc service.AuthService,
	m *metrics.Metrics,
	h Handlers,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks, metrics and docs
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	imports := protected.Group("/imports/tally")
	imports.POST("", h.Import.Upload)
	imports.POST("/parse", h.Import.Parse)
	imports.POST("/preview", h.Import.Preview)

	protected.GET("/items", h.Master.ListItems)
	protected.GET("/accounts", h.Master.ListAccounts)
	protected.GET("/clients", h.Master.ListClients)
	protected.GET("/vendors", h.Master.ListVendors)

	return r
}
