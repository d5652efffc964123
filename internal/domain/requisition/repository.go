package requisition

import "context"

type Repository interface {
	Create(ctx context.Context, r *Requisition) error

	GetByRequestID(ctx context.Context, requestID string) (*Requisition, error)

	// Same lookup under a row lock; use inside a UoW transaction so the
	// load→decide→save sequence is a critical section per request.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Requisition, error)

	Save(ctx context.Context, r *Requisition) error

	// ListAll returns requisitions in submission order, terminal ones
	// included (they are retained for audit).
	ListAll(ctx context.Context) ([]Requisition, error)

	ListByRequester(ctx context.Context, staffID string) ([]Requisition, error)
}
