package app

import (
	"github.com/gin-gonic/gin"

	"github.com/assemblee-ouverte/assemblee-backend/internal/http/handlers"
	"github.com/assemblee-ouverte/assemblee-backend/internal/observability"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/server"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Acteur   *handlers.ActeurHandler
	Organe   *handlers.OrganeHandler
	Document *handlers.DocumentHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Acteur:   handlers.NewActeurHandler(log, serviceset.Acteur, serviceset.ActeurStock),
		Organe:   handlers.NewOrganeHandler(log, serviceset.Organe, serviceset.OrganeStock),
		Document: handlers.NewDocumentHandler(log, serviceset.Document, serviceset.DocumentStock),
	}
}

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:    cfg.AllowOrigins,
		TracingEnabled:  observability.Enabled(),
		HealthHandler:   handlerset.Health,
		ActeurHandler:   handlerset.Acteur,
		OrganeHandler:   handlerset.Organe,
		DocumentHandler: handlerset.Document,
	})
}
