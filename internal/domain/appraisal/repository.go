package appraisal

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appraisal) error

	GetByAppraisalID(ctx context.Context, appraisalID string) (*Appraisal, error)

	// Current appraisal for a staff member in a period, if any
	GetByStaffAndPeriod(ctx context.Context, staffID, period string) (*Appraisal, error)

	Save(ctx context.Context, a *Appraisal) error

	ListByStaff(ctx context.Context, staffID string) ([]Appraisal, error)
}
