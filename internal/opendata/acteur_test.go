package opendata

import (
	"errors"
	"testing"
)

const acteurFixture = `{
  "acteur": {
    "@xmlns": "http://schemas.assemblee-nationale.fr/referentiel",
    "uid": {"@xsi:type": "IdActeur_type", "#text": "PA1234"},
    "etatCivil": {
      "ident": {"civ": "M.", "prenom": "Jean", "nom": "Martin", "trigramme": {"@xsi:nil": "true"}},
      "infoNaissance": {"dateNais": "1962-03-04", "villeNais": "Lyon", "depNais": "Rhône", "paysNais": "France"},
      "dateDeces": {"@xmlns:xsi": "ns", "@xsi:nil": "true"}
    },
    "profession": {
      "libelleCourant": "Médecin",
      "socProcINSEE": {"catSocPro": "31", "famSocPro": "3"}
    },
    "uri_hatvp": "https://www.hatvp.fr/fiche/PA1234",
    "mandats": {
      "mandat": [
        {
          "uid": "PM100",
          "acteurRef": "PA1234",
          "legislature": "17",
          "typeOrgane": "GP",
          "dateDebut": "2024-07-18",
          "dateFin": null,
          "preseance": "110",
          "infosQualite": {"codeQualite": "membre", "libQualite": "Membre", "libQualiteSex": "Membre"},
          "organes": {"organeRef": "PO800"},
          "election": {
            "lieu": {"region": "Auvergne-Rhône-Alpes", "regionType": "region", "departement": "Rhône", "numDepartement": "69", "numCirco": "2"},
            "causeMandat": "élections générales",
            "refCirconscription": "PO801"
          },
          "mandature": {"datePriseFonction": "2024-07-18", "premiereElection": "1", "placeHemicycle": "128"},
          "collaborateurs": {
            "collaborateur": {"qualite": "Collaborateur parlementaire", "prenom": "Anne", "nom": "Petit", "dateDebut": "2024-08-01"}
          },
          "suppleants": {
            "suppleant": {"dateDebut": "2024-07-18", "suppleantRef": "PA5678"}
          }
        },
        {
          "uid": "PM200",
          "acteurRef": "PA1234",
          "legislature": "16",
          "typeOrgane": "COM",
          "organes": {"organeRef": "PO900"}
        }
      ]
    }
  }
}`

func TestParseActeur_FullRecord(t *testing.T) {
	acteur, err := ParseActeur([]byte(acteurFixture))
	if err != nil {
		t.Fatalf("ParseActeur: %v", err)
	}
	if acteur.UID.Value != "PA1234" {
		t.Fatalf("uid = %q, want PA1234", acteur.UID.Value)
	}
	if acteur.EtatCivil == nil || acteur.EtatCivil.Ident == nil {
		t.Fatalf("missing etatCivil.ident")
	}
	if got := acteur.EtatCivil.Ident.Nom.Value; got != "Martin" {
		t.Fatalf("nom = %q", got)
	}
	if acteur.EtatCivil.Ident.Trigramme.Valid {
		t.Fatalf("nil-marked trigramme should be null")
	}
	if acteur.EtatCivil.DateDeces.Valid {
		t.Fatalf("nil-marked dateDeces should be null")
	}
	if acteur.Profession.SocProcINSEE.CatSocPro.Value != "31" {
		t.Fatalf("catSocPro = %q", acteur.Profession.SocProcINSEE.CatSocPro.Value)
	}

	mandats := acteur.Mandats.Mandat
	if len(mandats) != 2 {
		t.Fatalf("expected 2 mandats, got %d", len(mandats))
	}
	gp := mandats[0]
	if gp.TypeOrgane.Value != "GP" || gp.Legislature.Value != "17" {
		t.Fatalf("unexpected first mandat: %+v", gp)
	}
	if gp.Organes == nil || gp.Organes.OrganeRef.Value != "PO800" {
		t.Fatalf("organe ref not parsed")
	}
	if len(gp.Collaborateurs.Collaborateur) != 1 {
		t.Fatalf("singleton collaborateur should normalize to one-element list")
	}
	if len(gp.Suppleants.Suppleant) != 1 || gp.Suppleants.Suppleant[0].SuppleantRef.Value != "PA5678" {
		t.Fatalf("singleton suppleant not parsed: %+v", gp.Suppleants)
	}
	if gp.DateFin.Valid {
		t.Fatalf("null dateFin should be null")
	}
}

func TestParseActeur_BareUID(t *testing.T) {
	acteur, err := ParseActeur([]byte(`{"acteur": {"uid": "PA9"}}`))
	if err != nil {
		t.Fatalf("ParseActeur: %v", err)
	}
	if acteur.UID.Value != "PA9" {
		t.Fatalf("uid = %q", acteur.UID.Value)
	}
}

func TestParseActeur_MissingEnvelope(t *testing.T) {
	_, err := ParseActeur([]byte(`{"organe": {"uid": "PO1"}}`))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseActeur_MissingUID(t *testing.T) {
	_, err := ParseActeur([]byte(`{"acteur": {"etatCivil": {}}}`))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseActeur_UnknownFieldsIgnored(t *testing.T) {
	if _, err := ParseActeur([]byte(`{"acteur": {"uid": "PA9", "nouveauChamp": {"x": 1}}}`)); err != nil {
		t.Fatalf("unknown fields must be ignored: %v", err)
	}
}
