package mysql

import (
	"context"
	"errors"

	leaveDomain "polaris-hr-portal/internal/domain/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository struct{ db *gorm.DB }

func NewLeaveRepository(db *gorm.DB) *LeaveRepository { return &LeaveRepository{db: db} }

func (r *LeaveRepository) Create(ctx context.Context, l *leaveDomain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaveRepository) Save(ctx context.Context, l *leaveDomain.LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeaveRepository) GetByRequestID(ctx context.Context, requestID string) (*leaveDomain.LeaveRequest, error) {
	var out leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, leaveDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LeaveRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*leaveDomain.LeaveRequest, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out leaveDomain.LeaveRequest
	res := tx.Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, leaveDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LeaveRepository) ListAll(ctx context.Context) ([]leaveDomain.LeaveRequest, error) {
	var out []leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LeaveRepository) ListByRequester(ctx context.Context, staffID string) ([]leaveDomain.LeaveRequest, error) {
	var out []leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).
		Where("requester_staff_id = ?", staffID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
