// Package services holds the use cases behind the HTTP surface: the stock
// refresh pipelines that rebuild the database from the open-data archives,
// and the read paths serving individual records and document listings.
package services

import (
	"context"
	"database/sql"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/opendata"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

const acteurBatchSize = 50

// Archive holds and refreshes the working copy of one open-data archive.
// Implemented by stock.Stock.
type Archive interface {
	Refresh(ctx context.Context) ([]string, error)
	Dir() string
}

// TxRunner runs a function inside a database transaction. Satisfied by
// *gorm.DB.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

type ActeurStockService interface {
	Refresh(ctx context.Context) (int, error)
}

type acteurStockService struct {
	db         TxRunner
	log        *logger.Logger
	stock      Archive
	acteurRepo repos.ActeurRepo
}

func NewActeurStockService(db TxRunner, baseLog *logger.Logger, stock Archive, acteurRepo repos.ActeurRepo) ActeurStockService {
	serviceLog := baseLog.With("service", "ActeurStockService")
	return &acteurStockService{db: db, log: serviceLog, stock: stock, acteurRepo: acteurRepo}
}

// Refresh downloads the acteur archive and rebuilds the acteur, mandat,
// collaborateur and suppleant tables from it inside one transaction.
// Unreadable record files are skipped with a warning; any database fault
// rolls the whole run back.
func (s *acteurStockService) Refresh(ctx context.Context) (int, error) {
	log := s.log.With("run_id", uuid.NewString())

	files, err := s.stock.Refresh(ctx)
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}
	log.Info("Refreshing acteurs", "files", len(files))

	count := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(files); start += acteurBatchSize {
			end := min(start+acteurBatchSize, len(files))

			var acteurs []*types.Acteur
			var mandats []*types.Mandat
			var uids []string
			for _, path := range files[start:end] {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn("Skipping unreadable acteur file", "file", path, "error", err)
					continue
				}
				record, err := opendata.ParseActeur(data)
				if err != nil {
					log.Warn("Skipping invalid acteur record", "file", path, "error", err)
					continue
				}
				acteur, acteurMandats := convertActeur(record)
				acteurs = append(acteurs, acteur)
				uids = append(uids, acteur.UID)
				mandats = append(mandats, acteurMandats...)
			}

			if err := s.acteurRepo.UpsertBatch(ctx, tx, acteurs); err != nil {
				log.Error("Acteur batch upsert failed", "sqlstate", repoerr.SQLState(err), "error", err)
				return err
			}
			if err := s.acteurRepo.ReplaceMandats(ctx, tx, uids, mandats); err != nil {
				log.Error("Mandat rebuild failed", "sqlstate", repoerr.SQLState(err), "error", err)
				return err
			}
			count += len(acteurs)
		}
		return nil
	})
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}

	log.Info("Acteur stock refreshed", "count", count)
	return count, nil
}

func convertActeur(record *opendata.Acteur) (*types.Acteur, []*types.Mandat) {
	acteur := &types.Acteur{
		UID:            record.UID.Value,
		URLFicheActeur: record.URIHatvp.Ptr(),
	}
	if ec := record.EtatCivil; ec != nil {
		if id := ec.Ident; id != nil {
			acteur.Civilite = id.Civ.Ptr()
			acteur.Prenom = id.Prenom.Ptr()
			acteur.Nom = id.Nom.Ptr()
		}
		if n := ec.InfoNaissance; n != nil {
			acteur.DateNaissance = n.DateNais.Ptr()
			acteur.VilleNaissance = n.VilleNais.Ptr()
			acteur.DepartementNaissance = n.DepNais.Ptr()
			acteur.PaysNaissance = n.PaysNais.Ptr()
		}
		acteur.DateDeces = ec.DateDeces.Ptr()
	}
	if p := record.Profession; p != nil {
		acteur.ProfessionLibelle = p.LibelleCourant.Ptr()
		if sp := p.SocProcINSEE; sp != nil {
			acteur.CategorieSocioProfessionnelle = sp.CatSocPro.Ptr()
			acteur.FamilleSocioProfessionnelle = sp.FamSocPro.Ptr()
		}
	}

	mandats := make([]*types.Mandat, 0, len(record.Mandats.Mandat))
	for i := range record.Mandats.Mandat {
		mandats = append(mandats, convertMandat(acteur.UID, &record.Mandats.Mandat[i]))
	}
	return acteur, mandats
}

func convertMandat(acteurUID string, record *opendata.Mandat) *types.Mandat {
	mandat := &types.Mandat{
		UID:             record.UID.Ptr(),
		ActeurUID:       acteurUID,
		Legislature:     record.Legislature.Ptr(),
		TypeOrgane:      record.TypeOrgane.Ptr(),
		DateDebut:       record.DateDebut.Ptr(),
		DatePublication: record.DatePublication.Ptr(),
		DateFin:         record.DateFin.Ptr(),
		Preseance:       record.Preseance.Ptr(),
		NominPrincipale: record.NominPrincipale.Ptr(),
		Chambre:         record.Chambre.Ptr(),
	}
	if record.Organes != nil {
		mandat.OrganeUID = record.Organes.OrganeRef.Ptr()
	}
	if q := record.InfosQualite; q != nil {
		mandat.InfosQualiteCode = q.CodeQualite.Ptr()
		mandat.InfosQualiteLibelle = q.LibQualite.Ptr()
		mandat.InfosQualiteLibelleSexe = q.LibQualiteSex.Ptr()
	}
	if e := record.Election; e != nil {
		mandat.CauseMandat = e.CauseMandat.Ptr()
		mandat.RefCirconscription = e.RefCirconscription.Ptr()
		if l := e.Lieu; l != nil {
			mandat.LieuRegion = l.Region.Ptr()
			mandat.LieuRegionType = l.RegionType.Ptr()
			mandat.LieuDepartement = l.Departement.Ptr()
			mandat.LieuNumDepartement = l.NumDepartement.Ptr()
			mandat.LieuNumCirconscription = l.NumCirco.Ptr()
		}
	}
	if m := record.Mandature; m != nil {
		mandat.MandatureDatePriseFonction = m.DatePriseFonction.Ptr()
		mandat.MandatureCauseFin = m.CauseFin.Ptr()
		mandat.MandaturePremiereElection = m.PremiereElection.Ptr()
		mandat.MandaturePlaceHemicycle = m.PlaceHemicycle.Ptr()
		mandat.MandatureMandatRemplaceRef = m.MandatRemplaceRef.Ptr()
	}
	for _, c := range record.Collaborateurs.Collaborateur {
		mandat.Collaborateurs = append(mandat.Collaborateurs, &types.Collaborateur{
			Qualite:   c.Qualite.Ptr(),
			Prenom:    c.Prenom.Ptr(),
			Nom:       c.Nom.Ptr(),
			DateDebut: c.DateDebut.Ptr(),
			DateFin:   c.DateFin.Ptr(),
		})
	}
	for _, su := range record.Suppleants.Suppleant {
		mandat.Suppleants = append(mandat.Suppleants, &types.Suppleant{
			DateDebut:    su.DateDebut.Ptr(),
			DateFin:      su.DateFin.Ptr(),
			SuppleantUID: su.SuppleantRef.Ptr(),
		})
	}
	return mandat
}
