package uowmock

import (
	"context"
	"errors"

	"polaris-hr-portal/internal/domain/leave"
	"polaris-hr-portal/internal/domain/requisition"
	"polaris-hr-portal/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Unfilled
// function fields return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequisitionTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, rq *requisition.Requisition) error) error
	WithinLeaveTxFn       func(ctx context.Context, requestID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequisitionTx(ctx context.Context, requestID string, fn func(r uow.Repos, rq *requisition.Requisition) error) error {
	if m.WithinRequisitionTxFn != nil {
		return m.WithinRequisitionTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLeaveTx(ctx context.Context, requestID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error {
	if m.WithinLeaveTxFn != nil {
		return m.WithinLeaveTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose record-locking variants look the record
// up in the given repos and run fn without any real transaction.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinRequisitionTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, rq *requisition.Requisition) error) error {
			rq, err := r.Requisitions.GetByRequestIDForUpdate(ctx, requestID)
			if err != nil {
				return err
			}
			return fn(r, rq)
		},
		WithinLeaveTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error {
			l, err := r.Leaves.GetByRequestIDForUpdate(ctx, requestID)
			if err != nil {
				return err
			}
			return fn(r, l)
		},
	}
}
