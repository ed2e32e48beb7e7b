package opendata

import (
	"bytes"
	"encoding/json"
)

// Document is a legislative document record from the dossiers législatifs
// export.
type Document struct {
	UID                      NilString         `json:"uid"`
	Legislature              NilString         `json:"legislature"`
	CycleDeVie               *CycleDeVie       `json:"cycleDeVie"`
	DenominationStructurelle NilString         `json:"denominationStructurelle"`
	Provenance               NilString         `json:"provenance"`
	Titres                   *Titres           `json:"titres"`
	DossierRef               NilString         `json:"dossierRef"`
	Redacteur                json.RawMessage   `json:"redacteur"`
	Classification           *Classification   `json:"classification"`
	Auteurs                  Auteurs           `json:"auteurs"`
	Notice                   *Notice           `json:"notice"`
	OrganesReferents         *OrganesReferents `json:"organesReferents"`
}

type CycleDeVie struct {
	Chrono *Chrono `json:"chrono"`
}

type Chrono struct {
	DateCreation       NilTime `json:"dateCreation"`
	DateDepot          NilTime `json:"dateDepot"`
	DatePublication    NilTime `json:"datePublication"`
	DatePublicationWeb NilTime `json:"datePublicationWeb"`
}

type Titres struct {
	TitrePrincipal      NilString `json:"titrePrincipal"`
	TitrePrincipalCourt NilString `json:"titrePrincipalCourt"`
}

type Classification struct {
	Famille        *Famille     `json:"famille"`
	Type           *CodeLibelle `json:"type"`
	SousType       *Espece      `json:"sousType"`
	StatutAdoption NilString    `json:"statutAdoption"`
}

type Famille struct {
	Depot  *CodeLibelle `json:"depot"`
	Classe *CodeLibelle `json:"classe"`
	Espece *Espece      `json:"espece"`
}

type CodeLibelle struct {
	Code    NilString `json:"code"`
	Libelle NilString `json:"libelle"`
}

type Espece struct {
	Code           NilString `json:"code"`
	Libelle        NilString `json:"libelle"`
	LibelleEdition NilString `json:"libelleEdition"`
}

type Notice struct {
	NumNotice        NilString `json:"numNotice"`
	Formule          NilString `json:"formule"`
	AdoptionConforme NilString `json:"adoptionConforme"`
}

type Auteurs struct {
	Auteur List[Auteur] `json:"auteur"`
}

type Auteur struct {
	Acteur *AuteurActeur `json:"acteur"`
}

// AuteurActeur is an author entry: a soft actor reference plus the role the
// actor played for this document.
type AuteurActeur struct {
	ActeurRef NilString `json:"acteurRef"`
	Qualite   NilString `json:"qualite"`
}

type OrganesReferents struct {
	OrganeRef List[NilString] `json:"organeRef"`
}

// Refs returns the non-null referenced body ids.
func (o *OrganesReferents) Refs() []string {
	if o == nil {
		return nil
	}
	refs := make([]string, 0, len(o.OrganeRef))
	for _, ref := range o.OrganeRef {
		if ref.Valid {
			refs = append(refs, ref.Value)
		}
	}
	return refs
}

// RedacteurJSON returns the raw drafter payload when it is a JSON object or
// array, nil otherwise. The source occasionally carries scalars here that are
// not worth storing.
func (d *Document) RedacteurJSON() json.RawMessage {
	trimmed := bytes.TrimSpace(d.Redacteur)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return trimmed
	}
	return nil
}

func ParseDocument(data []byte) (*Document, error) {
	var envelope struct {
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Family: "document", Reason: "malformed JSON", Err: err}
	}
	if len(envelope.Document) == 0 {
		return nil, &ParseError{Family: "document", Reason: `missing "document" key`}
	}
	var document Document
	if err := json.Unmarshal(envelope.Document, &document); err != nil {
		return nil, &ParseError{Family: "document", Reason: "malformed record", Err: err}
	}
	if !document.UID.Valid {
		return nil, &ParseError{Family: "document", Reason: "missing uid"}
	}
	return &document, nil
}
