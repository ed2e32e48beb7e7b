package services

import (
	"context"
	"errors"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

type OrganeService interface {
	GetByUID(ctx context.Context, uid string) (*types.Organe, error)
}

type organeService struct {
	log        *logger.Logger
	organeRepo repos.OrganeRepo
}

func NewOrganeService(baseLog *logger.Logger, organeRepo repos.OrganeRepo) OrganeService {
	serviceLog := baseLog.With("service", "OrganeService")
	return &organeService{log: serviceLog, organeRepo: organeRepo}
}

func (s *organeService) GetByUID(ctx context.Context, uid string) (*types.Organe, error) {
	organe, err := s.organeRepo.GetByUID(ctx, nil, uid)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, err
		}
		return nil, &repoerr.ReadError{Op: "get organe " + uid, Err: err}
	}
	return organe, nil
}
