package services

import (
	"context"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/opendata"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

// Organe records are small and flat, so batches are much larger than the
// acteur and document pipelines use.
const organeBatchSize = 1000

type OrganeStockService interface {
	Refresh(ctx context.Context) (int, error)
}

type organeStockService struct {
	db         TxRunner
	log        *logger.Logger
	stock      Archive
	organeRepo repos.OrganeRepo
}

func NewOrganeStockService(db TxRunner, baseLog *logger.Logger, stock Archive, organeRepo repos.OrganeRepo) OrganeStockService {
	serviceLog := baseLog.With("service", "OrganeStockService")
	return &organeStockService{db: db, log: serviceLog, stock: stock, organeRepo: organeRepo}
}

func (s *organeStockService) Refresh(ctx context.Context) (int, error) {
	log := s.log.With("run_id", uuid.NewString())

	files, err := s.stock.Refresh(ctx)
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}
	log.Info("Refreshing organes", "files", len(files))

	count := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(files); start += organeBatchSize {
			end := min(start+organeBatchSize, len(files))

			var organes []*types.Organe
			for _, path := range files[start:end] {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn("Skipping unreadable organe file", "file", path, "error", err)
					continue
				}
				record, err := opendata.ParseOrgane(data)
				if err != nil {
					log.Warn("Skipping invalid organe record", "file", path, "error", err)
					continue
				}
				organes = append(organes, convertOrgane(record))
			}

			if err := s.organeRepo.UpsertBatch(ctx, tx, organes); err != nil {
				log.Error("Organe batch upsert failed", "sqlstate", repoerr.SQLState(err), "error", err)
				return err
			}
			count += len(organes)
		}
		return nil
	})
	if err != nil {
		return 0, &repoerr.StockUpdateError{Dir: s.stock.Dir(), Err: err}
	}

	log.Info("Organe stock refreshed", "count", count)
	return count, nil
}

func convertOrgane(record *opendata.Organe) *types.Organe {
	organe := &types.Organe{
		UID:                record.UID.Value,
		CodeType:           record.CodeType.Ptr(),
		Libelle:            record.Libelle.Ptr(),
		LibelleEdition:     record.LibelleEdition.Ptr(),
		LibelleAbrege:      record.LibelleAbrege.Ptr(),
		LibelleAbrev:       record.LibelleAbrev.Ptr(),
		OrganeParent:       record.OrganeParent.Ptr(),
		Preseance:          record.Preseance.Ptr(),
		OrganePrecedentRef: record.OrganePrecedentRef.Ptr(),
	}
	if v := record.ViMoDe; v != nil {
		organe.ViModeDateDebut = v.DateDebut.Ptr()
		organe.ViModeDateAgrement = v.DateAgrement.Ptr()
		organe.ViModeDateFin = v.DateFin.Ptr()
	}
	return organe
}
