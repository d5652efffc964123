package appraisal

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "polaris-hr-portal/internal/domain/appraisal"
	domainStaff "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/pkg/id"
)

type Usecase struct {
	repo  domain.Repository
	staff domainStaff.Repository
	now   func() time.Time
}

func NewUsecase(repo domain.Repository, staffRepo domainStaff.Repository) *Usecase {
	return &Usecase{repo: repo, staff: staffRepo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) WithClock(fn func() time.Time) *Usecase {
	u.now = fn
	return u
}

type GoalInput struct {
	Objective               string  `json:"objective"`
	CollaboratingDepartment string  `json:"collaborating_department"`
	Weight                  float64 `json:"weight"`
	SelfScore               float64 `json:"self_score"`
}

type SubmitInput struct {
	StaffID string
	Period  string
	Goals   []GoalInput
}

type ReviewInput struct {
	AppraisalID      string
	SupervisorScores []float64 // one per goal, in goal order
	Comment          string
	Recommendation   string
}

// SubmitSelf records (or re-records) the self-appraisal for a period.
// Supervisor fields survive a resubmission; the requester only owns the
// goals and self scores.
func (u *Usecase) SubmitSelf(ctx context.Context, in SubmitInput) (*domain.Appraisal, error) {
	if _, err := u.staff.GetByStaffID(ctx, in.StaffID); err != nil {
		return nil, err
	}
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	goals := make(domain.GoalList, 0, len(in.Goals))
	for _, g := range in.Goals {
		goals = append(goals, domain.Goal{
			Objective:               g.Objective,
			CollaboratingDepartment: g.CollaboratingDepartment,
			Weight:                  g.Weight,
			SelfScore:               g.SelfScore,
		})
	}

	existing, err := u.repo.GetByStaffAndPeriod(ctx, in.StaffID, in.Period)
	switch {
	case err == nil:
		// Carry supervisor scores over by position where they exist.
		for i := range goals {
			if i < len(existing.Goals) {
				goals[i].SupervisorScore = existing.Goals[i].SupervisorScore
			}
		}
		existing.Goals = goals
		existing.OverallSelfScore = domain.OverallScore(goals, false)
		existing.OverallSupervisorScore = domain.OverallScore(goals, true)
		existing.Rating = domain.RatingFor(existing.OverallSupervisorScore)
		existing.AppraisalDate = u.now()
		if err := u.repo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, domain.ErrNotFound):
		a := &domain.Appraisal{
			AppraisalID:      id.NewID32(),
			StaffID:          in.StaffID,
			Period:           in.Period,
			Goals:            goals,
			OverallSelfScore: domain.OverallScore(goals, false),
			Rating:           domain.RatingFor(0),
			AppraisalDate:    u.now(),
		}
		if err := u.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, err
	}
}

// Review records the supervisor's side: per-goal scores, overall comment
// and recommendation, and the derived rating band.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*domain.Appraisal, error) {
	a, err := u.repo.GetByAppraisalID(ctx, in.AppraisalID)
	if err != nil {
		return nil, err
	}
	if len(in.SupervisorScores) != len(a.Goals) {
		return nil, fmt.Errorf("%w: expected %d supervisor scores, got %d", domain.ErrValidation, len(a.Goals), len(in.SupervisorScores))
	}
	for i, s := range in.SupervisorScores {
		if s < 0 || s > 5 {
			return nil, fmt.Errorf("%w: supervisor score %d out of range 0-5", domain.ErrValidation, i)
		}
		a.Goals[i].SupervisorScore = s
	}

	a.OverallSupervisorScore = domain.OverallScore(a.Goals, true)
	a.SupervisorComment = in.Comment
	a.Recommendation = in.Recommendation
	a.Rating = domain.RatingFor(a.OverallSupervisorScore)
	a.AppraisalDate = u.now()

	if err := u.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) Get(ctx context.Context, appraisalID string) (*domain.Appraisal, error) {
	return u.repo.GetByAppraisalID(ctx, appraisalID)
}

func (u *Usecase) Current(ctx context.Context, staffID, period string) (*domain.Appraisal, error) {
	return u.repo.GetByStaffAndPeriod(ctx, staffID, period)
}

func (u *Usecase) ListByStaff(ctx context.Context, staffID string) ([]domain.Appraisal, error) {
	return u.repo.ListByStaff(ctx, staffID)
}

func validateSubmit(in SubmitInput) error {
	fail := func(msg string) error { return fmt.Errorf("%w: %s", domain.ErrValidation, msg) }

	if in.Period == "" {
		return fail("appraisal period is required")
	}
	if len(in.Goals) == 0 {
		return fail("at least one goal is required")
	}
	var totalWeight float64
	for i, g := range in.Goals {
		if g.Objective == "" {
			return fail(fmt.Sprintf("goal %d objective is required", i))
		}
		if g.Weight < 0 {
			return fail(fmt.Sprintf("goal %d weight must be non-negative", i))
		}
		if g.SelfScore < 0 || g.SelfScore > 5 {
			return fail(fmt.Sprintf("goal %d self score out of range 0-5", i))
		}
		totalWeight += g.Weight
	}
	if totalWeight <= 0 {
		return fail("total goal weight must be positive")
	}
	return nil
}
