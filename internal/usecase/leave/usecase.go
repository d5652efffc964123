package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "polaris-hr-portal/internal/domain/leave"
	domainStaff "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/internal/domain/uow"
	"polaris-hr-portal/internal/domain/workflow"
	"polaris-hr-portal/internal/notify"
	"polaris-hr-portal/pkg/id"
)

var validLeaveTypes = map[domain.LeaveType]struct{}{
	domain.TypeAnnual:      {},
	domain.TypeCasual:      {},
	domain.TypeExam:        {},
	domain.TypeMaternity:   {},
	domain.TypeBereavement: {},
	domain.TypeSick:        {},
}

type Usecase struct {
	repo     domain.Repository
	staff    domainStaff.Repository
	uow      uow.UnitOfWork
	chain    workflow.Chain
	notifier notify.Notifier
	now      func() time.Time
}

func NewUsecase(repo domain.Repository, staffRepo domainStaff.Repository, tx uow.UnitOfWork, chain workflow.Chain, n notify.Notifier) *Usecase {
	return &Usecase{repo: repo, staff: staffRepo, uow: tx, chain: chain, notifier: n, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) WithClock(fn func() time.Time) *Usecase {
	u.now = fn
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LeaveDTO, error) {
	requester, err := u.staff.GetByStaffID(ctx, in.RequesterStaffID)
	if err != nil {
		return nil, err
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	// Inclusive day count, the way the leave form has always counted.
	taken := int(in.EndDate.Sub(in.StartDate).Hours()/24) + 1
	remaining := in.EntitledDays - taken

	l := &domain.LeaveRequest{
		RequestID:           id.NewID32(),
		RequesterStaffID:    requester.StaffID,
		RequesterName:       requester.Name,
		RequesterDepartment: requester.Department,
		Title:               in.Title,
		Details:             in.Details,
		LeaveType:           domain.LeaveType(in.LeaveType),
		Reliever:            in.Reliever,
		EntitledDays:        in.EntitledDays,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		LeaveTaken:          taken,
		LeaveRemaining:      remaining, // may be negative; approvers see the overdraw
		SubmittedDate:       u.now(),
	}
	l.SetWorkflowState(workflow.NewState(u.chain))

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.notifyStage(ctx, l.Title, 0)
	return toDTO(l), nil
}

func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*LeaveDTO, error) {
	var dto *LeaveDTO

	err := u.uow.WithinLeaveTx(ctx, in.RequestID, func(r uow.Repos, l *domain.LeaveRequest) error {
		actor, err := r.Staff.GetByStaffID(ctx, in.StaffID)
		if err != nil {
			return err
		}
		state := l.WorkflowState()
		if err := workflow.Decide(&state, u.chain, actor.Principal(), in.Decision, in.Comment, u.now()); err != nil {
			return err
		}
		l.SetWorkflowState(state)
		if err := r.Leaves.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if workflow.Status(dto.FinalStatus) == workflow.StatusPending {
		u.notifyStage(ctx, dto.Title, dto.CurrentStage)
	} else {
		u.notifyRequester(ctx, dto)
	}
	return dto, nil
}

func (u *Usecase) ListPendingFor(ctx context.Context, staffID string) ([]LeaveDTO, error) {
	actor, err := u.staff.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	p := actor.Principal()
	out := make([]LeaveDTO, 0)
	for i := range all {
		if u.chain.IsEligibleApprover(all[i].WorkflowState(), p) {
			out = append(out, *toDTO(&all[i]))
		}
	}
	return out, nil
}

func (u *Usecase) ListMine(ctx context.Context, staffID string) ([]LeaveDTO, error) {
	ls, err := u.repo.ListByRequester(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]LeaveDTO, error) {
	ls, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*LeaveDTO, error) {
	l, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func validateCreate(in CreateInput) error {
	fail := func(msg string) error { return fmt.Errorf("%w: %s", domain.ErrValidation, msg) }

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Details) == "" {
		return fail("title and details are required")
	}
	if strings.TrimSpace(in.Reliever) == "" {
		return fail("reliever officer is required")
	}
	if _, ok := validLeaveTypes[domain.LeaveType(in.LeaveType)]; !ok {
		return fail("unknown leave type")
	}
	if in.EntitledDays < 0 {
		return fail("entitled days must be non-negative")
	}
	if in.EndDate.Before(in.StartDate) {
		return fail("end date must not be before start date")
	}
	return nil
}

func (u *Usecase) notifyStage(ctx context.Context, title string, stage int) {
	if u.notifier == nil || stage < 0 || stage >= len(u.chain) {
		return
	}
	st := u.chain[stage]
	members, err := u.staff.ListByPool(ctx, st.Department, st.GradeLevel)
	if err != nil {
		return
	}
	body := fmt.Sprintf("Leave request %q now awaits %s sign-off.", title, st.Role)
	var msgs []notify.Message
	for _, m := range members {
		msgs = append(msgs, notify.Message{Recipient: m.Email, Subject: "Leave request awaiting your approval", Body: body})
	}
	_ = u.notifier.Send(ctx, msgs...)
}

func (u *Usecase) notifyRequester(ctx context.Context, dto *LeaveDTO) {
	if u.notifier == nil {
		return
	}
	requester, err := u.staff.GetByStaffID(ctx, dto.RequesterStaffID)
	if err != nil {
		return
	}
	body := fmt.Sprintf("Your leave request %q is %s.", dto.Title, dto.FinalStatus)
	_ = u.notifier.Send(ctx, notify.Message{Recipient: requester.Email, Subject: "Leave request " + dto.FinalStatus, Body: body})
}
