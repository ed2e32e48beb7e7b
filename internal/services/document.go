package services

import (
	"context"
	"errors"
	"time"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos"
	"github.com/assemblee-ouverte/assemblee-backend/internal/repos/repoerr"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

// Document lifecycle dates are calendar days in the assembly's timezone, so
// the trailing-week window is computed in Paris time regardless of where the
// service runs.
var paris = mustLoadParis()

func mustLoadParis() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		panic(err)
	}
	return loc
}

type DocumentService interface {
	GetByUID(ctx context.Context, uid string) (*types.Document, error)
	ListCurrentWeek(ctx context.Context) ([]*types.Document, error)
	ListByTypeOrgane(ctx context.Context, codeType string) ([]*types.Document, error)
}

type documentService struct {
	log          *logger.Logger
	documentRepo repos.DocumentRepo
	now          func() time.Time
}

func NewDocumentService(baseLog *logger.Logger, documentRepo repos.DocumentRepo) DocumentService {
	serviceLog := baseLog.With("service", "DocumentService")
	return &documentService{log: serviceLog, documentRepo: documentRepo, now: time.Now}
}

func (s *documentService) GetByUID(ctx context.Context, uid string) (*types.Document, error) {
	document, err := s.documentRepo.GetByUID(ctx, nil, uid)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, err
		}
		return nil, &repoerr.ReadError{Op: "get document " + uid, Err: err}
	}
	return document, nil
}

// ListCurrentWeek returns the documents whose lifecycle touched the trailing
// week: the seven Paris calendar days ending today, inclusive.
func (s *documentService) ListCurrentWeek(ctx context.Context) ([]*types.Document, error) {
	from, to := trailingWeek(s.now())
	documents, err := s.documentRepo.ListByChronoWindow(ctx, nil, from, to)
	if err != nil {
		return nil, &repoerr.ReadError{Op: "list documents for week " + from + ".." + to, Err: err}
	}
	return documents, nil
}

func (s *documentService) ListByTypeOrgane(ctx context.Context, codeType string) ([]*types.Document, error) {
	documents, err := s.documentRepo.ListByTypeOrgane(ctx, nil, codeType)
	if err != nil {
		return nil, &repoerr.ReadError{Op: "list documents for organe type " + codeType, Err: err}
	}
	return documents, nil
}

// trailingWeek formats the inclusive [today-6d, today] window of Paris
// calendar days.
func trailingWeek(now time.Time) (from, to string) {
	today := now.In(paris)
	return today.AddDate(0, 0, -6).Format("2006-01-02"), today.Format("2006-01-02")
}
