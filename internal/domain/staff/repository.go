package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s *Staff) error

	// Resolve a principal by public staff id
	GetByStaffID(ctx context.Context, staffID string) (*Staff, error)

	// Members of one approval pool (notification targets for a stage)
	ListByPool(ctx context.Context, department, gradeLevel string) ([]Staff, error)

	List(ctx context.Context) ([]Staff, error)
}
