// Package resolve links soft textual references between loaded records:
// mandates point at organes by uid, document authors point at acteurs by
// uid. References to rows that do not exist are tolerated and left
// unresolved rather than failing the caller.
package resolve

import "github.com/assemblee-ouverte/assemblee-backend/internal/types"

// OrganeIndex resolves organe uid references against a loaded set of organes.
type OrganeIndex struct {
	byUID map[string]*types.Organe
}

func NewOrganeIndex(organes []*types.Organe) *OrganeIndex {
	idx := &OrganeIndex{byUID: make(map[string]*types.Organe, len(organes))}
	for _, o := range organes {
		idx.byUID[o.UID] = o
	}
	return idx
}

func (idx *OrganeIndex) Get(uid string) *types.Organe {
	return idx.byUID[uid]
}

// Enrich attaches the referenced organe to each mandate that carries an
// organe uid. Mandates whose reference is unknown keep a nil Organe.
func (idx *OrganeIndex) Enrich(mandats []*types.Mandat) {
	for _, m := range mandats {
		if m.OrganeUID == nil {
			continue
		}
		m.Organe = idx.byUID[*m.OrganeUID]
	}
}

// OrganeRefs collects the distinct organe uids referenced by the given
// mandates, in first-seen order.
func OrganeRefs(mandats []*types.Mandat) []string {
	seen := make(map[string]struct{}, len(mandats))
	var refs []string
	for _, m := range mandats {
		if m.OrganeUID == nil {
			continue
		}
		if _, ok := seen[*m.OrganeUID]; ok {
			continue
		}
		seen[*m.OrganeUID] = struct{}{}
		refs = append(refs, *m.OrganeUID)
	}
	return refs
}

// ActeurIndex resolves acteur uid references against the set of uids known
// to exist in storage.
type ActeurIndex struct {
	known map[string]struct{}
}

func NewActeurIndex(uids []string) *ActeurIndex {
	idx := &ActeurIndex{known: make(map[string]struct{}, len(uids))}
	for _, uid := range uids {
		idx.known[uid] = struct{}{}
	}
	return idx
}

// Resolve sets the foreign key on each author link whose soft reference
// names a known acteur. Unknown references keep the textual ref only, so
// the link survives even when the acteur stock has not been loaded yet.
func (idx *ActeurIndex) Resolve(auteurs []*types.DocumentActeur) {
	for _, a := range auteurs {
		a.ActeurUID = nil
		if a.ActeurRef == nil {
			continue
		}
		if _, ok := idx.known[*a.ActeurRef]; ok {
			a.ActeurUID = a.ActeurRef
		}
	}
}

// FilterMandats keeps only the mandates matching the given legislature and
// organe type. Empty filter values match everything. The type filter matches
// the mandate's own type_organe column, so a mandate whose organe reference
// dangles still shows up in the filtered view.
func FilterMandats(mandats []*types.Mandat, legislature, typeOrgane string) []*types.Mandat {
	if legislature == "" && typeOrgane == "" {
		return mandats
	}
	filtered := make([]*types.Mandat, 0, len(mandats))
	for _, m := range mandats {
		if legislature != "" {
			if m.Legislature == nil || *m.Legislature != legislature {
				continue
			}
		}
		if typeOrgane != "" {
			if m.TypeOrgane == nil || *m.TypeOrgane != typeOrgane {
				continue
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}
