package services

import (
	"context"
	"errors"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/resolve"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

type ActeurService interface {
	GetByUID(ctx context.Context, uid, legislature, typeOrgane string) (*types.Acteur, error)
}

type acteurService struct {
	log        *logger.Logger
	acteurRepo repos.ActeurRepo
	organeRepo repos.OrganeRepo
}

func NewActeurService(baseLog *logger.Logger, acteurRepo repos.ActeurRepo, organeRepo repos.OrganeRepo) ActeurService {
	serviceLog := baseLog.With("service", "ActeurService")
	return &acteurService{log: serviceLog, acteurRepo: acteurRepo, organeRepo: organeRepo}
}

// GetByUID loads an acteur with its mandates, attaches the organes the
// mandates point at, and applies the optional legislature and organe type
// filters. The type filter matches the mandate's own type_organe, so
// mandates with a dangling organe reference are filtered, not dropped.
func (s *acteurService) GetByUID(ctx context.Context, uid, legislature, typeOrgane string) (*types.Acteur, error) {
	acteur, err := s.acteurRepo.GetByUID(ctx, nil, uid)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, err
		}
		return nil, &repoerr.ReadError{Op: "get acteur " + uid, Err: err}
	}

	refs := resolve.OrganeRefs(acteur.Mandats)
	organes, err := s.organeRepo.ListByUIDs(ctx, nil, refs)
	if err != nil {
		return nil, &repoerr.ReadError{Op: "load organes for acteur " + uid, Err: err}
	}
	resolve.NewOrganeIndex(organes).Enrich(acteur.Mandats)
	acteur.Mandats = resolve.FilterMandats(acteur.Mandats, legislature, typeOrgane)
	return acteur, nil
}
