package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/assemblee-ouverte/assemblee-backend/internal/http/handlers"
)

type RouterConfig struct {
	AllowOrigins    []string
	TracingEnabled  bool
	HealthHandler   *handlers.HealthHandler
	ActeurHandler   *handlers.ActeurHandler
	OrganeHandler   *handlers.OrganeHandler
	DocumentHandler *handlers.DocumentHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("assemblee-backend"))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.Healthcheck)

	v1 := router.Group("/v1")
	{
		// Acteurs
		v1.GET("/acteurs/:uid", cfg.ActeurHandler.GetByUID)
		v1.POST("/acteurs", cfg.ActeurHandler.RefreshStock)
		// Organes
		v1.GET("/organes/:uid", cfg.OrganeHandler.GetByUID)
		v1.POST("/organes", cfg.OrganeHandler.RefreshStock)
		// Documents
		v1.GET("/documents", cfg.DocumentHandler.ListCurrentWeek)
		v1.GET("/documents/organes/:codeType", cfg.DocumentHandler.ListByTypeOrgane)
		v1.GET("/documents/:uid", cfg.DocumentHandler.GetByUID)
		v1.POST("/documents", cfg.DocumentHandler.RefreshStock)
	}

	return router
}
