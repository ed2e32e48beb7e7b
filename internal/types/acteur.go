package types

import (
	"time"
)

type Acteur struct {
	UID                           string     `gorm:"column:uid;primaryKey" json:"uid"`
	Civilite                      *string    `gorm:"column:civilite;type:varchar(10)" json:"civilite,omitempty"`
	Prenom                        *string    `gorm:"column:prenom;type:varchar(255);index:ix_acteur_prenom" json:"prenom,omitempty"`
	Nom                           *string    `gorm:"column:nom;type:varchar(255);index:ix_acteur_nom" json:"nom,omitempty"`
	DateNaissance                 *time.Time `gorm:"column:date_naissance;type:date" json:"date_naissance,omitempty"`
	VilleNaissance                *string    `gorm:"column:ville_naissance;type:varchar(255)" json:"ville_naissance,omitempty"`
	DepartementNaissance          *string    `gorm:"column:departement_naissance;type:varchar(255)" json:"departement_naissance,omitempty"`
	PaysNaissance                 *string    `gorm:"column:pays_naissance;type:varchar(255)" json:"pays_naissance,omitempty"`
	DateDeces                     *time.Time `gorm:"column:date_deces;type:date" json:"date_deces,omitempty"`
	ProfessionLibelle             *string    `gorm:"column:profession_libelle;type:text" json:"profession_libelle,omitempty"`
	CategorieSocioProfessionnelle *string    `gorm:"column:categorie_socio_professionnelle;type:varchar(50)" json:"categorie_socio_professionnelle,omitempty"`
	FamilleSocioProfessionnelle   *string    `gorm:"column:famille_socio_professionnelle;type:varchar(50)" json:"famille_socio_professionnelle,omitempty"`
	URLFicheActeur                *string    `gorm:"column:url_fiche_acteur;type:text" json:"url_fiche_acteur,omitempty"`
	Mandats                       []*Mandat  `gorm:"foreignKey:ActeurUID;references:UID;constraint:OnDelete:CASCADE" json:"mandats,omitempty"`
	UpdatedAt                     time.Time  `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (Acteur) TableName() string { return "acteur" }
