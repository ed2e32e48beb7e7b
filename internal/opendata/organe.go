package opendata

import "encoding/json"

// Organe is an institutional entity: assembly, political group, committee,
// extra-parliamentary body, and so on.
type Organe struct {
	UID                NilString `json:"uid"`
	CodeType           NilString `json:"codeType"`
	Libelle            NilString `json:"libelle"`
	LibelleEdition     NilString `json:"libelleEdition"`
	LibelleAbrege      NilString `json:"libelleAbrege"`
	LibelleAbrev       NilString `json:"libelleAbrev"`
	ViMoDe             *ViMoDe   `json:"viMoDe"`
	OrganeParent       NilString `json:"organeParent"`
	Preseance          NilString `json:"preseance"`
	OrganePrecedentRef NilString `json:"organePrecedentRef"`
}

// ViMoDe is the body's life-cycle block (creation, agreement, dissolution).
type ViMoDe struct {
	DateDebut    NilDate `json:"dateDebut"`
	DateAgrement NilDate `json:"dateAgrement"`
	DateFin      NilDate `json:"dateFin"`
}

func ParseOrgane(data []byte) (*Organe, error) {
	var envelope struct {
		Organe json.RawMessage `json:"organe"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ParseError{Family: "organe", Reason: "malformed JSON", Err: err}
	}
	if len(envelope.Organe) == 0 {
		return nil, &ParseError{Family: "organe", Reason: `missing "organe" key`}
	}
	var organe Organe
	if err := json.Unmarshal(envelope.Organe, &organe); err != nil {
		return nil, &ParseError{Family: "organe", Reason: "malformed record", Err: err}
	}
	if !organe.UID.Valid {
		return nil, &ParseError{Family: "organe", Reason: "missing uid"}
	}
	return &organe, nil
}
