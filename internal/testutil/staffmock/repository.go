package staffmock

import (
	"context"

	domain "polaris-hr-portal/internal/domain/staff"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies staff.Repository. The
// Directory helper builds one over a fixed roster, which is what most
// tests want.
type Repo struct {
	CreateFn       func(ctx context.Context, s *domain.Staff) error
	GetByStaffIDFn func(ctx context.Context, staffID string) (*domain.Staff, error)
	ListByPoolFn   func(ctx context.Context, department, gradeLevel string) ([]domain.Staff, error)
	ListFn         func(ctx context.Context) ([]domain.Staff, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Staff) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByStaffID(ctx context.Context, staffID string) (*domain.Staff, error) {
	if m.GetByStaffIDFn != nil {
		return m.GetByStaffIDFn(ctx, staffID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByPool(ctx context.Context, department, gradeLevel string) ([]domain.Staff, error) {
	if m.ListByPoolFn != nil {
		return m.ListByPoolFn(ctx, department, gradeLevel)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Staff, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Directory returns a Repo backed by the given roster.
func Directory(roster ...domain.Staff) *Repo {
	return &Repo{
		GetByStaffIDFn: func(_ context.Context, staffID string) (*domain.Staff, error) {
			for i := range roster {
				if roster[i].StaffID == staffID {
					s := roster[i]
					return &s, nil
				}
			}
			return nil, domain.ErrNotFound
		},
		ListByPoolFn: func(_ context.Context, department, gradeLevel string) ([]domain.Staff, error) {
			var out []domain.Staff
			for i := range roster {
				if roster[i].Department == department && roster[i].GradeLevel == gradeLevel {
					out = append(out, roster[i])
				}
			}
			return out, nil
		},
		ListFn: func(_ context.Context) ([]domain.Staff, error) {
			return roster, nil
		},
	}
}
