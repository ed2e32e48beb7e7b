package types

import (
	"time"

	"gorm.io/datatypes"
)

type Document struct {
	UID                         string            `gorm:"column:uid;primaryKey" json:"uid"`
	Legislature                 *string           `gorm:"column:legislature;type:varchar(50);index:ix_document_legislature" json:"legislature,omitempty"`
	DateCreation                *time.Time        `gorm:"column:date_creation;type:timestamptz;index:ix_document_date_creation" json:"date_creation,omitempty"`
	DateDepot                   *time.Time        `gorm:"column:date_depot;type:timestamptz;index:ix_document_date_depot" json:"date_depot,omitempty"`
	DatePublication             *time.Time        `gorm:"column:date_publication;type:timestamptz;index:ix_document_date_publication" json:"date_publication,omitempty"`
	DatePublicationWeb          *time.Time        `gorm:"column:date_publication_web;type:timestamptz;index:ix_document_date_publication_web" json:"date_publication_web,omitempty"`
	TitrePrincipal              *string           `gorm:"column:titre_principal;type:text" json:"titre_principal,omitempty"`
	TitrePrincipalCourt         *string           `gorm:"column:titre_principal_court;type:text" json:"titre_principal_court,omitempty"`
	DenominationStructurelle    *string           `gorm:"column:denomination_structurelle;type:varchar(255)" json:"denomination_structurelle,omitempty"`
	Provenance                  *string           `gorm:"column:provenance;type:varchar(255)" json:"provenance,omitempty"`
	DossierRef                  *string           `gorm:"column:dossier_ref;type:varchar(255)" json:"dossier_ref,omitempty"`
	NoticeNumNotice             *string           `gorm:"column:notice_num_notice;type:varchar(50)" json:"notice_num_notice,omitempty"`
	NoticeFormule               *string           `gorm:"column:notice_formule;type:text" json:"notice_formule,omitempty"`
	NoticeAdoptionConforme      *string           `gorm:"column:notice_adoption_conforme;type:varchar(50)" json:"notice_adoption_conforme,omitempty"`
	ClassFamilleDepotCode       *string           `gorm:"column:classification_famille_depot_code;type:varchar(50)" json:"classification_famille_depot_code,omitempty"`
	ClassFamilleDepotLibelle    *string           `gorm:"column:classification_famille_depot_libelle;type:text" json:"classification_famille_depot_libelle,omitempty"`
	ClassFamilleClasseCode      *string           `gorm:"column:classification_famille_classe_code;type:varchar(50)" json:"classification_famille_classe_code,omitempty"`
	ClassFamilleClasseLibelle   *string           `gorm:"column:classification_famille_classe_libelle;type:text" json:"classification_famille_classe_libelle,omitempty"`
	ClassFamilleEspeceCode      *string           `gorm:"column:classification_famille_espece_code;type:varchar(50)" json:"classification_famille_espece_code,omitempty"`
	ClassFamilleEspeceLibelle   *string           `gorm:"column:classification_famille_espece_libelle;type:text" json:"classification_famille_espece_libelle,omitempty"`
	ClassFamilleEspeceLibelleEd *string           `gorm:"column:classification_famille_espece_libelle_edition;type:text" json:"classification_famille_espece_libelle_edition,omitempty"`
	ClassTypeCode               *string           `gorm:"column:classification_type_code;type:varchar(50)" json:"classification_type_code,omitempty"`
	ClassTypeLibelle            *string           `gorm:"column:classification_type_libelle;type:text" json:"classification_type_libelle,omitempty"`
	ClassSousTypeCode           *string           `gorm:"column:classification_sous_type_code;type:varchar(50)" json:"classification_sous_type_code,omitempty"`
	ClassSousTypeLibelle        *string           `gorm:"column:classification_sous_type_libelle;type:text" json:"classification_sous_type_libelle,omitempty"`
	ClassSousTypeLibelleEd      *string           `gorm:"column:classification_sous_type_libelle_edition;type:text" json:"classification_sous_type_libelle_edition,omitempty"`
	ClassStatutAdoption         *string           `gorm:"column:classification_statut_adoption;type:varchar(255)" json:"classification_statut_adoption,omitempty"`
	OrganesReferents            datatypes.JSON    `gorm:"column:organes_referents;type:jsonb" json:"organes_referents,omitempty"`
	Redacteur                   datatypes.JSON    `gorm:"column:redacteur;type:jsonb" json:"redacteur,omitempty"`
	Auteurs                     []*DocumentActeur `gorm:"foreignKey:DocumentUID;references:UID;constraint:OnDelete:CASCADE" json:"auteurs,omitempty"`
	UpdatedAt                   time.Time         `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (Document) TableName() string { return "document" }

// DocumentActeur joins a document to one of its authors. ActeurRef is the soft
// reference carried by the source payload; ActeurUID is only set when the
// referenced acteur actually exists in the store. Ordre preserves source order.
type DocumentActeur struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DocumentUID string  `gorm:"column:document_uid;not null;index:ix_document_acteur_document_uid" json:"document_uid"`
	ActeurRef   *string `gorm:"column:acteur_ref;type:varchar(255)" json:"acteur_ref,omitempty"`
	ActeurUID   *string `gorm:"column:acteur_uid;index:ix_document_acteur_acteur_uid" json:"acteur_uid,omitempty"`
	Acteur      *Acteur `gorm:"foreignKey:ActeurUID;references:UID;constraint:OnDelete:SET NULL" json:"acteur,omitempty"`
	Qualite     *string `gorm:"column:qualite;type:varchar(255)" json:"qualite,omitempty"`
	Ordre       int     `gorm:"column:ordre;not null" json:"ordre"`
}

func (DocumentActeur) TableName() string { return "document_acteur" }
