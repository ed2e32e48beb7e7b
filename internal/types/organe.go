package types

import (
	"time"
)

type Organe struct {
	UID                string     `gorm:"column:uid;primaryKey" json:"uid"`
	CodeType           *string    `gorm:"column:code_type;type:varchar(50);index:ix_organe_code_type" json:"code_type,omitempty"`
	Libelle            *string    `gorm:"column:libelle;type:text;index:ix_organe_libelle" json:"libelle,omitempty"`
	LibelleEdition     *string    `gorm:"column:libelle_edition;type:text" json:"libelle_edition,omitempty"`
	LibelleAbrege      *string    `gorm:"column:libelle_abrege;type:text" json:"libelle_abrege,omitempty"`
	LibelleAbrev       *string    `gorm:"column:libelle_abrev;type:varchar(255)" json:"libelle_abrev,omitempty"`
	OrganeParent       *string    `gorm:"column:organe_parent;type:varchar(255)" json:"organe_parent,omitempty"`
	Preseance          *string    `gorm:"column:preseance;type:varchar(50)" json:"preseance,omitempty"`
	OrganePrecedentRef *string    `gorm:"column:organe_precedent_ref;type:varchar(255)" json:"organe_precedent_ref,omitempty"`
	ViModeDateDebut    *time.Time `gorm:"column:vimode_date_debut;type:date" json:"vimode_date_debut,omitempty"`
	ViModeDateAgrement *time.Time `gorm:"column:vimode_date_agrement;type:date" json:"vimode_date_agrement,omitempty"`
	ViModeDateFin      *time.Time `gorm:"column:vimode_date_fin;type:date" json:"vimode_date_fin,omitempty"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (Organe) TableName() string { return "organe" }
