package leave

import "context"

type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error

	GetByRequestID(ctx context.Context, requestID string) (*LeaveRequest, error)

	// Row-locked variant for the decide critical section.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LeaveRequest, error)

	Save(ctx context.Context, l *LeaveRequest) error

	ListAll(ctx context.Context) ([]LeaveRequest, error)

	ListByRequester(ctx context.Context, staffID string) ([]LeaveRequest, error)
}
