package app

import (
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
)

type Repos struct {
	Acteur   repos.ActeurRepo
	Organe   repos.OrganeRepo
	Document repos.DocumentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Acteur:   repos.NewActeurRepo(db, log),
		Organe:   repos.NewOrganeRepo(db, log),
		Document: repos.NewDocumentRepo(db, log),
	}
}
