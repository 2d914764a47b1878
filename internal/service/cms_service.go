package service

import (
	"context"

	"github.com/alaama/backend/internal/model"
)

// CMSService manages the editable site content: services and case studies.
// Reads are shared by the public and admin surfaces; writes are admin-only
// (the handlers enforce authentication).
type CMSService interface {
	ListServices(ctx context.Context, opts model.ServiceListOptions) ([]*model.Service, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
	CreateService(ctx context.Context, svc *model.Service) error
	UpdateService(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListCaseStudies(ctx context.Context, opts model.CaseStudyListOptions) ([]*model.CaseStudy, error)
	GetCaseStudy(ctx context.Context, id string) (*model.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, cs *model.CaseStudy) error
	UpdateCaseStudy(ctx context.Context, id string, upd model.CaseStudyUpdate) (*model.CaseStudy, error)
	DeleteCaseStudy(ctx context.Context, id string) error
}
