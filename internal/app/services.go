package app

import (
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/services"
	"github.com/assemblee-ouverte/assemblee-backend/internal/stock"
)

type Services struct {
	Acteur        services.ActeurService
	Organe        services.OrganeService
	Document      services.DocumentService
	ActeurStock   services.ActeurStockService
	OrganeStock   services.OrganeStockService
	DocumentStock services.DocumentStockService
}

// The acteur and organe families share the AMO archive; each family keeps
// its own Stock so refreshes stay independent.
func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	acteurStock := stock.New(log, cfg.StockDir, "acteurs.zip", "acteur", cfg.AmoURL)
	organeStock := stock.New(log, cfg.StockDir, "acteurs.zip", "organe", cfg.AmoURL)
	documentStock := stock.New(log, cfg.StockDir, "dossier_legislatifs.zip", "document", cfg.DossiersURL)

	return Services{
		Acteur:        services.NewActeurService(log, reposet.Acteur, reposet.Organe),
		Organe:        services.NewOrganeService(log, reposet.Organe),
		Document:      services.NewDocumentService(log, reposet.Document),
		ActeurStock:   services.NewActeurStockService(db, log, acteurStock, reposet.Acteur),
		OrganeStock:   services.NewOrganeStockService(db, log, organeStock, reposet.Organe),
		DocumentStock: services.NewDocumentStockService(db, log, documentStock, reposet.Document, reposet.Acteur),
	}
}
