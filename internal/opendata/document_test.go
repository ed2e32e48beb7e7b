package opendata

import (
	"errors"
	"testing"
)

const documentFixture = `{
  "document": {
    "uid": "DLR5L17N50123",
    "legislature": "17",
    "cycleDeVie": {
      "chrono": {
        "dateCreation": "2025-02-03T14:00:00+01:00",
        "dateDepot": "2025-02-03T00:00:00+01:00",
        "datePublication": null,
        "datePublicationWeb": "2025-02-04T09:30:00+01:00"
      }
    },
    "denominationStructurelle": "Proposition de loi",
    "provenance": "Assemblée nationale",
    "titres": {
      "titrePrincipal": "Proposition de loi visant à ...",
      "titrePrincipalCourt": "PPL ..."
    },
    "dossierRef": "DLR5L17N50000",
    "redacteur": {"service": "DSJ"},
    "classification": {
      "famille": {
        "depot": {"code": "PRPLOI", "libelle": "Proposition de loi"},
        "classe": {"code": "PROJPROP", "libelle": "Projets et propositions de loi"},
        "espece": {"code": "PPL", "libelle": "Proposition de loi", "libelleEdition": "n°"}
      },
      "type": {"code": "PRPLOI", "libelle": "Proposition de loi"},
      "statutAdoption": {"@xsi:nil": "true"}
    },
    "notice": {"numNotice": "123", "formule": "Proposition de loi", "adoptionConforme": "false"},
    "auteurs": {
      "auteur": [
        {"acteur": {"acteurRef": "PA1234", "qualite": "auteur"}},
        {"acteur": {"acteurRef": "PA0000", "qualite": "cosignataire"}}
      ]
    },
    "organesReferents": {"organeRef": "PO800"}
  }
}`

func TestParseDocument_FullRecord(t *testing.T) {
	document, err := ParseDocument([]byte(documentFixture))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if document.UID.Value != "DLR5L17N50123" {
		t.Fatalf("uid = %q", document.UID.Value)
	}
	chrono := document.CycleDeVie.Chrono
	if !chrono.DateCreation.Valid || chrono.DatePublication.Valid {
		t.Fatalf("chrono not normalized: %+v", chrono)
	}
	if document.Classification.StatutAdoption.Valid {
		t.Fatalf("nil-marked statutAdoption should be null")
	}
	if document.Classification.Famille.Espece.LibelleEdition.Value != "n°" {
		t.Fatalf("espece libelleEdition not parsed")
	}
	if len(document.Auteurs.Auteur) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(document.Auteurs.Auteur))
	}
	if document.Auteurs.Auteur[1].Acteur.Qualite.Value != "cosignataire" {
		t.Fatalf("author order not preserved")
	}
	if refs := document.OrganesReferents.Refs(); len(refs) != 1 || refs[0] != "PO800" {
		t.Fatalf("singleton organeRef should normalize to one-element list, got %v", refs)
	}
	if document.RedacteurJSON() == nil {
		t.Fatalf("object redacteur should be kept")
	}
}

func TestParseDocument_ScalarRedacteurDropped(t *testing.T) {
	document, err := ParseDocument([]byte(`{"document": {"uid": "D1", "redacteur": "texte libre"}}`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if document.RedacteurJSON() != nil {
		t.Fatalf("scalar redacteur should not be stored")
	}
}

func TestParseDocument_MissingUID(t *testing.T) {
	_, err := ParseDocument([]byte(`{"document": {"legislature": "17"}}`))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseOrgane_Record(t *testing.T) {
	organe, err := ParseOrgane([]byte(`{
	  "organe": {
	    "uid": "PO800",
	    "codeType": "GP",
	    "libelle": "Groupe Démocrate",
	    "libelleAbrege": "DEM",
	    "viMoDe": {"dateDebut": "2024-07-18", "dateFin": {"@xsi:nil": "true"}},
	    "organeParent": {"@xsi:nil": "true"},
	    "preseance": "40"
	  }
	}`))
	if err != nil {
		t.Fatalf("ParseOrgane: %v", err)
	}
	if organe.UID.Value != "PO800" || organe.CodeType.Value != "GP" {
		t.Fatalf("unexpected organe: %+v", organe)
	}
	if !organe.ViMoDe.DateDebut.Valid || organe.ViMoDe.DateFin.Valid {
		t.Fatalf("viMoDe not normalized: %+v", organe.ViMoDe)
	}
	if organe.OrganeParent.Valid {
		t.Fatalf("nil-marked organeParent should be null")
	}
}
