package opendata

import "encoding/json"

// Acteur mirrors the AMO "acteur" record: a person together with every
// mandate held across bodies. Field names follow the upstream schema
// (https://www.assemblee-nationale.fr/opendata/Schemas_Entites/AMO).
type Acteur struct {
	UID        NilString   `json:"uid"`
	EtatCivil  *EtatCivil  `json:"etatCivil"`
	Profession *Profession `json:"profession"`
	URIHatvp   NilString   `json:"uri_hatvp"`
	Mandats    Mandats     `json:"mandats"`
}

type EtatCivil struct {
	Ident         *Ident         `json:"ident"`
	InfoNaissance *InfoNaissance `json:"infoNaissance"`
	DateDeces     NilDate        `json:"dateDeces"`
}

type Ident struct {
	Civ       NilString `json:"civ"`
	Prenom    NilString `json:"prenom"`
	Nom       NilString `json:"nom"`
	Alpha     NilString `json:"alpha"`
	Trigramme NilString `json:"trigramme"`
}

type InfoNaissance struct {
	DateNais  NilDate   `json:"dateNais"`
	VilleNais NilString `json:"villeNais"`
	DepNais   NilString `json:"depNais"`
	PaysNais  NilString `json:"paysNais"`
}

type Profession struct {
	LibelleCourant NilString     `json:"libelleCourant"`
	SocProcINSEE   *SocProcINSEE `json:"socProcINSEE"`
}

type SocProcINSEE struct {
	CatSocPro NilString `json:"catSocPro"`
	FamSocPro NilString `json:"famSocPro"`
}

type Mandats struct {
	Mandat List[Mandat] `json:"mandat"`
}

type Mandat struct {
	UID             NilString       `json:"uid"`
	ActeurRef       NilString       `json:"acteurRef"`
	Legislature     NilString       `json:"legislature"`
	TypeOrgane      NilString       `json:"typeOrgane"`
	DateDebut       NilDate         `json:"dateDebut"`
	DatePublication NilDate         `json:"datePublication"`
	DateFin         NilDate         `json:"dateFin"`
	Preseance       NilString       `json:"preseance"`
	NominPrincipale NilString       `json:"nominPrincipale"`
	InfosQualite    *InfosQualite   `json:"infosQualite"`
	Organes         *OrganesRef     `json:"organes"`
	Suppleants      Suppleants      `json:"suppleants"`
	Chambre         NilString       `json:"chambre"`
	Election        *Election       `json:"election"`
	Mandature       *Mandature      `json:"mandature"`
	Collaborateurs  Collaborateurs  `json:"collaborateurs"`
}

type InfosQualite struct {
	CodeQualite   NilString `json:"codeQualite"`
	LibQualite    NilString `json:"libQualite"`
	LibQualiteSex NilString `json:"libQualiteSex"`
}

// OrganesRef carries the soft reference a mandate makes to its body.
type OrganesRef struct {
	OrganeRef NilString `json:"organeRef"`
}

type Election struct {
	Lieu               *LieuElection `json:"lieu"`
	CauseMandat        NilString     `json:"causeMandat"`
	RefCirconscription NilString     `json:"refCirconscription"`
}

type LieuElection struct {
	Region         NilString `json:"region"`
	RegionType     NilString `json:"regionType"`
	Departement    NilString `json:"departement"`
	NumDepartement NilString `json:"numDepartement"`
	NumCirco       NilString `json:"numCirco"`
}

type Mandature struct {
	DatePriseFonction NilDate   `json:"datePriseFonction"`
	CauseFin          NilString `json:"causeFin"`
	PremiereElection  NilString `json:"premiereElection"`
	PlaceHemicycle    NilString `json:"placeHemicycle"`
	MandatRemplaceRef NilString `json:"mandatRemplaceRef"`
}

type Suppleants struct {
	Suppleant List[Suppleant] `json:"suppleant"`
}

type Suppleant struct {
	DateDebut    NilDate   `json:"dateDebut"`
	DateFin      NilDate   `json:"dateFin"`
	SuppleantRef NilString `json:"suppleantRef"`
}

type Collaborateurs struct {
	Collaborateur List[Collaborateur] `json:"collaborateur"`
}

type Collaborateur struct {
	Qualite   NilString `json:"qualite"`
	Prenom    NilString `json:"prenom"`
	Nom       NilString `json:"nom"`
	DateDebut NilDate   `json:"dateDebut"`
	DateFin   NilDate   `json:"dateFin"`
}

// ParseActeur parses one acteur JSON file. The payload nests the record under
// a top-level "acteur" key; the uid may arrive bare or wrapped in a
// {"#text": ...} object.
func ParseActeur(data []byte) (*Acteur, error) {
	var envelope struct {
		Acteur json.RawMessage `json:"acteur"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Family: "acteur", Reason: "malformed JSON", Err: err}
	}
	if len(envelope.Acteur) == 0 {
		return nil, &ParseError{Family: "acteur", Reason: `missing "acteur" key`}
	}
	var acteur Acteur
	if err := json.Unmarshal(envelope.Acteur, &acteur); err != nil {
		return nil, &ParseError{Family: "acteur", Reason: "malformed record", Err: err}
	}
	if !acteur.UID.Valid {
		return nil, &ParseError{Family: "acteur", Reason: "missing uid"}
	}
	return &acteur, nil
}
