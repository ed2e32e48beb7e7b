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

var documentUpdateColumns = []string{
	"legislature",
	"date_creation",
	"date_depot",
	"date_publication",
	"date_publication_web",
	"titre_principal",
	"titre_principal_court",
	"denomination_structurelle",
	"provenance",
	"dossier_ref",
	"notice_num_notice",
	"notice_formule",
	"notice_adoption_conforme",
	"classification_famille_depot_code",
	"classification_famille_depot_libelle",
	"classification_famille_classe_code",
	"classification_famille_classe_libelle",
	"classification_famille_espece_code",
	"classification_famille_espece_libelle",
	"classification_famille_espece_libelle_edition",
	"classification_type_code",
	"classification_type_libelle",
	"classification_sous_type_code",
	"classification_sous_type_libelle",
	"classification_sous_type_libelle_edition",
	"classification_statut_adoption",
	"organes_referents",
	"redacteur",
}

type DocumentRepo interface {
	UpsertBatch(ctx context.Context, tx *gorm.DB, documents []*types.Document) error
	ReplaceAuteurs(ctx context.Context, tx *gorm.DB, documentUIDs []string, auteurs []*types.DocumentActeur) error
	GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Document, error)
	ListByChronoWindow(ctx context.Context, tx *gorm.DB, from, to string) ([]*types.Document, error)
	ListByTypeOrgane(ctx context.Context, tx *gorm.DB, codeType string) ([]*types.Document, error)
}

type documentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
	repoLog := baseLog.With("repo", "DocumentRepo")
	return &documentRepo{db: db, log: repoLog}
}

func (r *documentRepo) UpsertBatch(ctx context.Context, tx *gorm.DB, documents []*types.Document) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(documents) == 0 {
		return nil
	}
	documents = dedupeByUID(documents, func(d *types.Document) string { return d.UID })

	return transaction.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(upsertClause("uid", documentUpdateColumns)).
		Create(&documents).Error
}

// ReplaceAuteurs clears and rebuilds the author links of the given
// documents, preserving each link's ordre.
func (r *documentRepo) ReplaceAuteurs(ctx context.Context, tx *gorm.DB, documentUIDs []string, auteurs []*types.DocumentActeur) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(documentUIDs) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Where("document_uid IN ?", documentUIDs).
		Delete(&types.DocumentActeur{}).Error; err != nil {
		return err
	}
	if len(auteurs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Omit("Acteur").
		Create(&auteurs).Error
}

func (r *documentRepo) GetByUID(ctx context.Context, tx *gorm.DB, uid string) (*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var document types.Document
	err := transaction.WithContext(ctx).
		Preload("Auteurs", orderByOrdre).
		Preload("Auteurs.Acteur").
		Where("uid = ?", uid).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repoerr.ErrNotFound
		}
		return nil, err
	}
	return &document, nil
}

// ListByChronoWindow returns the documents whose lifecycle touched the
// inclusive [from, to] day window on any of the four chrono dates. Bounds
// are Paris calendar days formatted as 2006-01-02.
func (r *documentRepo) ListByChronoWindow(ctx context.Context, tx *gorm.DB, from, to string) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var documents []*types.Document
	query := transaction.WithContext(ctx).
		Preload("Auteurs", orderByOrdre).
		Preload("Auteurs.Acteur").
		Where(
			transaction.Session(&gorm.Session{NewDB: true}).
				Where(windowExpr("date_creation"), from, to).
				Or(windowExpr("date_depot"), from, to).
				Or(windowExpr("date_publication"), from, to).
				Or(windowExpr("date_publication_web"), from, to),
		).
		Order("uid")
	if err := query.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

// ListByTypeOrgane returns the documents referred to an organe of the given
// code type, matching stored organe uids against the organes_referents
// array, most recently published first.
func (r *documentRepo) ListByTypeOrgane(ctx context.Context, tx *gorm.DB, codeType string) ([]*types.Document, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var documents []*types.Document
	err := transaction.WithContext(ctx).
		Preload("Auteurs", orderByOrdre).
		Preload("Auteurs.Acteur").
		Where(
			"EXISTS (SELECT 1 FROM organe o WHERE o.code_type = ? AND document.organes_referents @> to_jsonb(o.uid::text))",
			codeType,
		).
		Order("date_publication DESC NULLS LAST").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func orderByOrdre(db *gorm.DB) *gorm.DB {
	return db.Order("ordre")
}

func windowExpr(column string) string {
	return "(" + column + " AT TIME ZONE 'Europe/Paris')::date BETWEEN ? AND ?"
}
