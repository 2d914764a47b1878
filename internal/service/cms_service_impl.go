package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/alaama/backend/internal/model"
	"github.com/alaama/backend/internal/repository"
	"github.com/google/uuid"
)

// cmsServiceImpl is the production implementation of CMSService.
type cmsServiceImpl struct {
	services    repository.ServiceRepository
	caseStudies repository.CaseStudyRepository
	now         func() time.Time
}

// NewCMSService creates a CMSService backed by the given repositories.
func NewCMSService(services repository.ServiceRepository, caseStudies repository.CaseStudyRepository) CMSService {
	return &cmsServiceImpl{services: services, caseStudies: caseStudies, now: time.Now}
}

func (s *cmsServiceImpl) ListServices(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error) {
	return s.services.List(ctx, opts)
}

func (s *cmsServiceImpl) GetService(ctx context.Context, id string) (*model.Service, error) {
	return s.services.GetByID(ctx, id)
}

// CreateService assigns identity and timestamps, then persists.
func (s *cmsServiceImpl) CreateService(ctx context.Context, svc *model.Service) error {
	now := s.now().UTC()
	svc.ID = uuid.NewString()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if err := s.services.Create(ctx, svc); err != nil {
		return err
	}
	slog.Info("service created", "service_id", svc.ID)
	return nil
}

func (s *cmsServiceImpl) UpdateService(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error) {
	svc, err := s.services.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	slog.Info("service updated", "service_id", id)
	return svc, nil
}

func (s *cmsServiceImpl) DeleteService(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("service deleted", "service_id", id)
	return nil
}

func (s *cmsServiceImpl) ListCaseStudies(ctx context.Context, opts model.CaseStudyListOptions) ([]*model.CaseStudy, error) {
	return s.caseStudies.List(ctx, opts)
}

func (s *cmsServiceImpl) GetCaseStudy(ctx context.Context, id string) (*model.CaseStudy, error) {
	return s.caseStudies.GetByID(ctx, id)
}

// CreateCaseStudy assigns identity and timestamps, then persists.
func (s *cmsServiceImpl) CreateCaseStudy(ctx context.Context, cs *model.CaseStudy) error {
	now := s.now().UTC()
	cs.ID = uuid.NewString()
	cs.CreatedAt = now
	cs.UpdatedAt = now
	if err := s.caseStudies.Create(ctx, cs); err != nil {
		return err
	}
	slog.Info("case study created", "case_study_id", cs.ID)
	return nil
}

func (s *cmsServiceImpl) UpdateCaseStudy(ctx context.Context, id string, upd model.CaseStudyUpdate) (*model.CaseStudy, error) {
	cs, err := s.caseStudies.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	slog.Info("case study updated", "case_study_id", id)
	return cs, nil
}

func (s *cmsServiceImpl) DeleteCaseStudy(ctx context.Context, id string) error {
	if err := s.caseStudies.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("case study deleted", "case_study_id", id)
	return nil
}
