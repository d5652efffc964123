package mysql

import (
	"context"
	"errors"

	apprDomain "polaris-hr-portal/internal/domain/appraisal"

	"gorm.io/gorm"
)

type AppraisalRepository struct{ db *gorm.DB }

func NewAppraisalRepository(db *gorm.DB) *AppraisalRepository {
	return &AppraisalRepository{db: db}
}

func (r *AppraisalRepository) Create(ctx context.Context, a *apprDomain.Appraisal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AppraisalRepository) Save(ctx context.Context, a *apprDomain.Appraisal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AppraisalRepository) GetByAppraisalID(ctx context.Context, appraisalID string) (*apprDomain.Appraisal, error) {
	var out apprDomain.Appraisal
	res := r.db.WithContext(ctx).Where("appraisal_id = ?", appraisalID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, apprDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *AppraisalRepository) GetByStaffAndPeriod(ctx context.Context, staffID, period string) (*apprDomain.Appraisal, error) {
	var out apprDomain.Appraisal
	res := r.db.WithContext(ctx).
		Where("staff_id = ? AND period = ?", staffID, period).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, apprDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *AppraisalRepository) ListByStaff(ctx context.Context, staffID string) ([]apprDomain.Appraisal, error) {
	var out []apprDomain.Appraisal
	res := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
