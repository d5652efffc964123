package uow

import (
	"context"

	"polaris-hr-portal/internal/domain/leave"
	"polaris-hr-portal/internal/domain/requisition"
	"polaris-hr-portal/internal/domain/staff"
)

type Repos struct {
	Requisitions requisition.Repository
	Leaves       leave.Repository
	Staff        staff.Repository
}

// UnitOfWork scopes a read-decide-write sequence to one transaction. The
// record-locking variants load the target row FOR UPDATE first, so two
// eligible approvers acting at once serialize instead of both advancing a
// stale copy.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error

	WithinRequisitionTx(ctx context.Context, requestID string, fn func(r Repos, rq *requisition.Requisition) error) error

	WithinLeaveTx(ctx context.Context, requestID string, fn func(r Repos, l *leave.LeaveRequest) error) error
}
