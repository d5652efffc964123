package requisitionmock

import (
	"context"

	domain "polaris-hr-portal/internal/domain/requisition"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies requisition.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Requisition) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.Requisition, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.Requisition, error)
	SaveFn                    func(ctx context.Context, r *domain.Requisition) error
	ListAllFn                 func(ctx context.Context) ([]domain.Requisition, error)
	ListByRequesterFn         func(ctx context.Context, staffID string) ([]domain.Requisition, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Requisition) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Requisition, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Requisition, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.Requisition) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Requisition, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByRequester(ctx context.Context, staffID string) ([]domain.Requisition, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, staffID)
	}
	return nil, nil
}
