package mysql

import (
	"context"
	"errors"

	staffDomain "polaris-hr-portal/internal/domain/staff"

	"gorm.io/gorm"
)

type StaffRepository struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{db: db} }

func (r *StaffRepository) Create(ctx context.Context, s *staffDomain.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StaffRepository) GetByStaffID(ctx context.Context, staffID string) (*staffDomain.Staff, error) {
	var out staffDomain.Staff
	res := r.db.WithContext(ctx).Where("staff_id = ?", staffID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, staffDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *StaffRepository) ListByPool(ctx context.Context, department, gradeLevel string) ([]staffDomain.Staff, error) {
	var out []staffDomain.Staff
	res := r.db.WithContext(ctx).
		Where("department = ? AND grade_level = ?", department, gradeLevel).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *StaffRepository) List(ctx context.Context) ([]staffDomain.Staff, error) {
	var out []staffDomain.Staff
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
