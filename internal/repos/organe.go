package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

var organeUpdateColumns = []string{
	"code_type",
	"libelle",
	"libelle_edition",
	"libelle_abrege",
	"libelle_abrev",
	"organe_parent",
	"preseance",
	"organe_precedent_ref",
	"vimode_date_debut",
	"vimode_date_agrement",
	"vimode_date_fin",
}

type OrganeRepo interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, organes []*types.Organe) error
	GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Organe, error)
	ListByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Organe, error)
}

type organeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganeRepo(db *gorm.DB, baseLog *logger.Logger) OrganeRepo {
	repoLog := baseLog.With("repo", "OrganeRepo")
	return &organeRepo{db: db, log: repoLog}
}

func (r *organeRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, organes []*types.Organe) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(organes) == 0 {
		return nil
	}
	organes = dedupeByUID(organes, func(o *types.Organe) string { return o.UID })

	return transaction.WithContext(ctx).
		Clauses(upsertClause("uid", organeUpdateColumns)).
		Create(&organes).Error
}

func (r *organeRepo) GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Organe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var organe types.Organe
	err := transaction.WithContext(ctx).
		Where("uid = ?", uid).
		First(&organe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repoerr.ErrNotFound
		}
		return nil, err
	}
	return &organe, nil
}

func (r *organeRepo) ListByUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]*types.Organe, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var organes []*types.Organe
	if len(uids) == 0 {
		return organes, nil
	}

	if err := transaction.WithContext(ctx).
		Where("uid IN ?", uids).
		Find(&organes).Error; err != nil {
		return nil, err
	}
	return organes, nil
}
