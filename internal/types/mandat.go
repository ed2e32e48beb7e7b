package types

import (
	"time"
)

// Mandat is one tenure of an Acteur within an Organe. The row identity is a
// surrogate id because the source does not always carry a mandate uid; when it
// does, the uid is kept unique so re-ingested mandates converge.
type Mandat struct {
	ID                         int              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UID                        *string          `gorm:"column:uid;type:varchar(255);uniqueIndex:uq_mandat_uid" json:"uid,omitempty"`
	ActeurUID                  string           `gorm:"column:acteur_uid;not null;index:ix_mandat_acteur_uid" json:"acteur_uid"`
	OrganeUID                  *string          `gorm:"column:organe_uid;index:ix_mandat_organe_uid" json:"organe_uid,omitempty"`
	Organe                     *Organe          `gorm:"foreignKey:OrganeUID;references:UID;constraint:OnDelete:SET NULL" json:"organe,omitempty"`
	Legislature                *string          `gorm:"column:legislature;type:varchar(50);index:ix_mandat_legislature" json:"legislature,omitempty"`
	TypeOrgane                 *string          `gorm:"column:type_organe;type:varchar(50)" json:"type_organe,omitempty"`
	DateDebut                  *time.Time       `gorm:"column:date_debut;type:date" json:"date_debut,omitempty"`
	DatePublication            *time.Time       `gorm:"column:date_publication;type:date" json:"date_publication,omitempty"`
	DateFin                    *time.Time       `gorm:"column:date_fin;type:date" json:"date_fin,omitempty"`
	Preseance                  *string          `gorm:"column:preseance;type:varchar(50)" json:"preseance,omitempty"`
	NominPrincipale            *string          `gorm:"column:nomin_principale;type:varchar(255)" json:"nomin_principale,omitempty"`
	InfosQualiteCode           *string          `gorm:"column:infos_qualite_code;type:varchar(50)" json:"infos_qualite_code,omitempty"`
	InfosQualiteLibelle        *string          `gorm:"column:infos_qualite_libelle;type:text" json:"infos_qualite_libelle,omitempty"`
	InfosQualiteLibelleSexe    *string          `gorm:"column:infos_qualite_libelle_sexe;type:text" json:"infos_qualite_libelle_sexe,omitempty"`
	Chambre                    *string          `gorm:"column:chambre;type:varchar(50)" json:"chambre,omitempty"`
	CauseMandat                *string          `gorm:"column:cause_mandat;type:varchar(255)" json:"cause_mandat,omitempty"`
	RefCirconscription         *string          `gorm:"column:ref_circonscription;type:varchar(255)" json:"ref_circonscription,omitempty"`
	LieuRegion                 *string          `gorm:"column:lieu_region;type:varchar(255)" json:"lieu_region,omitempty"`
	LieuRegionType             *string          `gorm:"column:lieu_region_type;type:varchar(50)" json:"lieu_region_type,omitempty"`
	LieuDepartement            *string          `gorm:"column:lieu_departement;type:varchar(255)" json:"lieu_departement,omitempty"`
	LieuNumDepartement         *string          `gorm:"column:lieu_num_departement;type:varchar(10)" json:"lieu_num_departement,omitempty"`
	LieuNumCirconscription     *string          `gorm:"column:lieu_num_circonscription;type:varchar(10)" json:"lieu_num_circonscription,omitempty"`
	MandatureDatePriseFonction *time.Time       `gorm:"column:mandature_date_prise_fonction;type:date" json:"mandature_date_prise_fonction,omitempty"`
	MandatureCauseFin          *string          `gorm:"column:mandature_cause_fin;type:varchar(255)" json:"mandature_cause_fin,omitempty"`
	MandaturePremiereElection  *string          `gorm:"column:mandature_premiere_election;type:varchar(255)" json:"mandature_premiere_election,omitempty"`
	MandaturePlaceHemicycle    *string          `gorm:"column:mandature_place_hemicycle;type:varchar(50)" json:"mandature_place_hemicycle,omitempty"`
	MandatureMandatRemplaceRef *string          `gorm:"column:mandature_mandat_remplace_ref;type:varchar(255)" json:"mandature_mandat_remplace_ref,omitempty"`
	Collaborateurs             []*Collaborateur `gorm:"foreignKey:MandatID;references:ID;constraint:OnDelete:CASCADE" json:"collaborateurs,omitempty"`
	Suppleants                 []*Suppleant     `gorm:"foreignKey:MandatID;references:ID;constraint:OnDelete:CASCADE" json:"suppleants,omitempty"`
	UpdatedAt                  time.Time        `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (Mandat) TableName() string { return "mandat" }

type Collaborateur struct {
	ID        int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MandatID  int        `gorm:"column:mandat_id;not null;index:ix_collaborateur_mandat_id" json:"mandat_id"`
	Qualite   *string    `gorm:"column:qualite;type:varchar(255)" json:"qualite,omitempty"`
	Prenom    *string    `gorm:"column:prenom;type:varchar(255)" json:"prenom,omitempty"`
	Nom       *string    `gorm:"column:nom;type:varchar(255)" json:"nom,omitempty"`
	DateDebut *time.Time `gorm:"column:date_debut;type:date" json:"date_debut,omitempty"`
	DateFin   *time.Time `gorm:"column:date_fin;type:date" json:"date_fin,omitempty"`
}

func (Collaborateur) TableName() string { return "collaborateur" }

type Suppleant struct {
	ID           int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MandatID     int        `gorm:"column:mandat_id;not null;index:ix_suppleant_mandat_id" json:"mandat_id"`
	DateDebut    *time.Time `gorm:"column:date_debut;type:date" json:"date_debut,omitempty"`
	DateFin      *time.Time `gorm:"column:date_fin;type:date" json:"date_fin,omitempty"`
	SuppleantUID *string    `gorm:"column:suppleant_uid;type:varchar(255)" json:"suppleant_uid,omitempty"`
}

func (Suppleant) TableName() string { return "suppleant" }
