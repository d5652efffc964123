package mysql

import (
	"context"
	"errors"

	reqDomain "polaris-hr-portal/internal/domain/requisition"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequisitionRepository struct{ db *gorm.DB }

func NewRequisitionRepository(db *gorm.DB) *RequisitionRepository {
	return &RequisitionRepository{db: db}
}

func (r *RequisitionRepository) Create(ctx context.Context, rq *reqDomain.Requisition) error {
	return r.db.WithContext(ctx).Create(rq).Error
}

func (r *RequisitionRepository) Save(ctx context.Context, rq *reqDomain.Requisition) error {
	return r.db.WithContext(ctx).Save(rq).Error
}

func (r *RequisitionRepository) GetByRequestID(ctx context.Context, requestID string) (*reqDomain.Requisition, error) {
	var out reqDomain.Requisition
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, reqDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByRequestIDForUpdate locks the row for the surrounding transaction.
// SQLite (tests) has no FOR UPDATE; its writes serialize on the database
// file, so the clause is applied for MySQL only.
func (r *RequisitionRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*reqDomain.Requisition, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out reqDomain.Requisition
	res := tx.Where("request_id = ?", requestID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, reqDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RequisitionRepository) ListAll(ctx context.Context) ([]reqDomain.Requisition, error) {
	var out []reqDomain.Requisition
	// Submission order: insertion order by numeric PK.
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *RequisitionRepository) ListByRequester(ctx context.Context, staffID string) ([]reqDomain.Requisition, error) {
	var out []reqDomain.Requisition
	res := r.db.WithContext(ctx).
		Where("requester_staff_id = ?", staffID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
