package appraisalmock

import (
	"context"

	domain "polaris-hr-portal/internal/domain/appraisal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies appraisal.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Appraisal) error
	GetByAppraisalIDFn    func(ctx context.Context, appraisalID string) (*domain.Appraisal, error)
	GetByStaffAndPeriodFn func(ctx context.Context, staffID, period string) (*domain.Appraisal, error)
	SaveFn                func(ctx context.Context, a *domain.Appraisal) error
	ListByStaffFn         func(ctx context.Context, staffID string) ([]domain.Appraisal, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Appraisal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppraisalID(ctx context.Context, appraisalID string) (*domain.Appraisal, error) {
	if m.GetByAppraisalIDFn != nil {
		return m.GetByAppraisalIDFn(ctx, appraisalID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByStaffAndPeriod(ctx context.Context, staffID, period string) (*domain.Appraisal, error) {
	if m.GetByStaffAndPeriodFn != nil {
		return m.GetByStaffAndPeriodFn(ctx, staffID, period)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Appraisal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByStaff(ctx context.Context, staffID string) ([]domain.Appraisal, error) {
	if m.ListByStaffFn != nil {
		return m.ListByStaffFn(ctx, staffID)
	}
	return nil, nil
}
