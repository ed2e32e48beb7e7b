package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

// acteurUpdateColumns lists the columns rewritten when an acteur row is
// re-ingested. updated_at is handled separately with a server-side now().
var acteurUpdateColumns = []string{
	"civilite",
	"prenom",
	"nom",
	"date_naissance",
	"ville_naissance",
	"departement_naissance",
	"pays_naissance",
	"date_deces",
	"profession_libelle",
	"categorie_socio_professionnelle",
	"famille_socio_professionnelle",
	"url_fiche_acteur",
}

type ActeurRepo interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, acteurs []*types.Acteur) error
	ReplaceMandats(ctx context.Context, tx *gorm.DB, acteurUIDs []string, mandats []*types.Mandat) error
	GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Acteur, error)
	ExistingUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]string, error)
}

type acteurRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActeurRepo(db *gorm.DB, baseLog *logger.Logger) ActeurRepo {
	repoLog := baseLog.With("repo", "ActeurRepo")
	return &acteurRepo{db: db, log: repoLog}
}

func (r *acteurRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, acteurs []*types.Acteur) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(acteurs) == 0 {
		return nil
	}
	acteurs = dedupeByUID(acteurs, func(a *types.Acteur) string { return a.UID })

	return transaction.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(upsertClause("uid", acteurUpdateColumns)).
		Create(&acteurs).Error
}

// ReplaceMandats clears and rebuilds the mandate collections of the given
// acteurs. Collaborateurs and suppleants hanging off the created mandates
// are inserted along with them.
func (r *acteurRepo) ReplaceMandats(ctx context.Context, tx *gorm.DB, acteurUIDs []string, mandats []*types.Mandat) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(acteurUIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("acteur_uid IN ?", acteurUIDs).
		Delete(&types.Mandat{}).Error; err != nil {
		return err
	}
	if len(mandats) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Create(&mandats).Error
}

func (r *acteurRepo) GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Acteur, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var acteur types.Acteur
	err := transaction.WithContext(ctx).
		Preload("Mandats.Collaborateurs").
		Preload("Mandats.Suppleants").
		Where("uid = ?", uid).
		First(&acteur).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repoerr.ErrNotFound
		}
		return nil, err
	}
	return &acteur, nil
}

// ExistingUIDs filters the given uids down to those with a stored row.
func (r *acteurRepo) ExistingUIDs(ctx context.Context, tx *gorm.DB, uids []string) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var existing []string
	if len(uids) == 0 {
		return existing, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Acteur{}).
		Where("uid IN ?", uids).
		Pluck("uid", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
