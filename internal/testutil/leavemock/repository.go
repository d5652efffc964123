package leavemock

import (
	"context"

	domain "polaris-hr-portal/internal/domain/leave"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies leave.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.LeaveRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	SaveFn                    func(ctx context.Context, l *domain.LeaveRequest) error
	ListAllFn                 func(ctx context.Context) ([]domain.LeaveRequest, error)
	ListByRequesterFn         func(ctx context.Context, staffID string) ([]domain.LeaveRequest, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LeaveRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.LeaveRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByRequester(ctx context.Context, staffID string) ([]domain.LeaveRequest, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, staffID)
	}
	return nil, nil
}
