package mysql

import (
	"context"

	"polaris-hr-portal/internal/domain/leave"
	"polaris-hr-portal/internal/domain/requisition"
	"polaris-hr-portal/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requisitions: &RequisitionRepository{db: tx},
		Leaves:       &LeaveRepository{db: tx},
		Staff:        &StaffRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

// WithinRequisitionTx locks the requisition row up-front so the whole
// load-decide-save sequence is one critical section per request id.
func (u *GormUoW) WithinRequisitionTx(ctx context.Context, requestID string, fn func(r uow.Repos, rq *requisition.Requisition) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		rq, err := r.Requisitions.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, rq)
	})
}

func (u *GormUoW) WithinLeaveTx(ctx context.Context, requestID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		l, err := r.Leaves.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
