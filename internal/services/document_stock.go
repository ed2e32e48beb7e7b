package services

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/opendata"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/resolve"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

const documentBatchSize = 50

type DocumentStockService interface {
	Refresh(ctx context.Context) (int, error)
}

type documentStockService struct {
	db           TxRunner
	log          *logger.Logger
	stock        Archive
	documentRepo repos.DocumentRepo
	acteurRepo   repos.ActeurRepo
}

func NewDocumentStockService(db TxRunner, baseLog *logger.Logger, stock Archive, documentRepo repos.DocumentRepo, acteurRepo repos.ActeurRepo) DocumentStockService {
	serviceLog := baseLog.With("service", "DocumentStockService")
	return &documentStockService{db: db, log: serviceLog, stock: stock, documentRepo: documentRepo, acteurRepo: acteurRepo}
}

// Refresh downloads the document archive and rebuilds the document and
// document_acteur tables inside one transaction. Author links to acteurs
// that are not stored keep their textual reference with a null foreign key.
func (s *documentStockService) Refresh(ctx context.Context) (int, error) {
	log := s.log.With("run_id", uuid.NewString())

	files, err := s.stock.Refresh(ctx)
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}
	log.Info("Refreshing documents", "files", len(files))

	count := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(files); start += documentBatchSize {
			end := min(start+documentBatchSize, len(files))

			var documents []*types.Document
			var auteurs []*types.DocumentActeur
			var uids []string
			for _, path := range files[start:end] {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn("Skipping unreadable document file", "file", path, "error", err)
					continue
				}
				record, err := opendata.ParseDocument(data)
				if err != nil {
					log.Warn("Skipping invalid document record", "file", path, "error", err)
					continue
				}
				document, documentAuteurs := convertDocument(record)
				documents = append(documents, document)
				uids = append(uids, document.UID)
				auteurs = append(auteurs, documentAuteurs...)
			}

			if err := s.resolveAuteurs(ctx, tx, auteurs); err != nil {
				return err
			}
			if err := s.documentRepo.UpsertBatch(ctx, tx, documents); err != nil {
				log.Error("Document batch upsert failed", "sqlstate", repoerr.SQLState(err), "error", err)
				return err
			}
			if err := s.documentRepo.ReplaceAuteurs(ctx, tx, uids, auteurs); err != nil {
				log.Error("Author rebuild failed", "sqlstate", repoerr.SQLState(err), "error", err)
				return err
			}
			count += len(documents)
		}
		return nil
	})
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}

	log.Info("Document stock refreshed", "count", count)
	return count, nil
}

// resolveAuteurs sets the acteur foreign key on the links whose reference
// names a stored acteur.
func (s *documentStockService) resolveAuteurs(ctx context.Context, tx *gorm.DB, auteurs []*types.DocumentActeur) error {
	refs := make([]string, 0, len(auteurs))
	for _, a := range auteurs {
		if a.ActeurRef != nil {
			refs = append(refs, *a.ActeurRef)
		}
	}
	existing, err := s.acteurRepo.ExistingUIDs(ctx, tx, refs)
	if err != nil {
		return err
	}
	resolve.NewActeurIndex(existing).Resolve(auteurs)
	return nil
}

func convertDocument(record *opendata.Document) (*types.Document, []*types.DocumentActeur) {
	document := &types.Document{
		UID:                      record.UID.Value,
		Legislature:              record.Legislature.Ptr(),
		DenominationStructurelle: record.DenominationStructurelle.Ptr(),
		Provenance:               record.Provenance.Ptr(),
		DossierRef:               record.DossierRef.Ptr(),
	}
	if cv := record.CycleDeVie; cv != nil && cv.Chrono != nil {
		document.DateCreation = cv.Chrono.DateCreation.Ptr()
		document.DateDepot = cv.Chrono.DateDepot.Ptr()
		document.DatePublication = cv.Chrono.DatePublication.Ptr()
		document.DatePublicationWeb = cv.Chrono.DatePublicationWeb.Ptr()
	}
	if t := record.Titres; t != nil {
		document.TitrePrincipal = t.TitrePrincipal.Ptr()
		document.TitrePrincipalCourt = t.TitrePrincipalCourt.Ptr()
	}
	if n := record.Notice; n != nil {
		document.NoticeNumNotice = n.NumNotice.Ptr()
		document.NoticeFormule = n.Formule.Ptr()
		document.NoticeAdoptionConforme = n.AdoptionConforme.Ptr()
	}
	if c := record.Classification; c != nil {
		if f := c.Famille; f != nil {
			if d := f.Depot; d != nil {
				document.ClassFamilleDepotCode = d.Code.Ptr()
				document.ClassFamilleDepotLibelle = d.Libelle.Ptr()
			}
			if cl := f.Classe; cl != nil {
				document.ClassFamilleClasseCode = cl.Code.Ptr()
				document.ClassFamilleClasseLibelle = cl.Libelle.Ptr()
			}
			if e := f.Espece; e != nil {
				document.ClassFamilleEspeceCode = e.Code.Ptr()
				document.ClassFamilleEspeceLibelle = e.Libelle.Ptr()
				document.ClassFamilleEspeceLibelleEd = e.LibelleEdition.Ptr()
			}
		}
		if t := c.Type; t != nil {
			document.ClassTypeCode = t.Code.Ptr()
			document.ClassTypeLibelle = t.Libelle.Ptr()
		}
		if st := c.SousType; st != nil {
			document.ClassSousTypeCode = st.Code.Ptr()
			document.ClassSousTypeLibelle = st.Libelle.Ptr()
			document.ClassSousTypeLibelleEd = st.LibelleEdition.Ptr()
		}
		document.ClassStatutAdoption = c.StatutAdoption.Ptr()
	}

	// The referents list is stored even when empty so containment queries
	// never have to special-case null.
	refs := record.OrganesReferents.Refs()
	if refs == nil {
		refs = []string{}
	}
	encoded, _ := json.Marshal(refs)
	document.OrganesReferents = datatypes.JSON(encoded)
	if raw := record.RedacteurJSON(); raw != nil {
		document.Redacteur = datatypes.JSON(raw)
	}

	var auteurs []*types.DocumentActeur
	ordre := 0
	for i := range record.Auteurs.Auteur {
		auteur := record.Auteurs.Auteur[i].Acteur
		if auteur == nil {
			continue
		}
		ref := auteur.ActeurRef.Ptr()
		qualite := auteur.Qualite.Ptr()
		if ref == nil && qualite == nil {
			continue
		}
		ordre++
		auteurs = append(auteurs, &types.DocumentActeur{
			DocumentUID: document.UID,
			ActeurRef:   ref,
			Qualite:     qualite,
			Ordre:       ordre,
		})
	}
	return document, auteurs
}
