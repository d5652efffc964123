package requisition

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "polaris-hr-portal/internal/domain/requisition"
	domainStaff "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/internal/domain/uow"
	"polaris-hr-portal/internal/domain/workflow"
	"polaris-hr-portal/internal/notify"
	"polaris-hr-portal/pkg/id"
)

// Usecase is the requisition lifecycle manager: creation, queries, and
// the decide critical section. All workflow math lives in the workflow
// package; this layer owns persistence, identity snapshots and
// notifications.
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

// WithClock overrides the timestamp source. Tests pin it.
func (u *Usecase) WithClock(fn func() time.Time) *Usecase {
	u.now = fn
	return u
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequisitionDTO, error) {
	requester, err := u.staff.GetByStaffID(ctx, in.RequesterStaffID)
	if err != nil {
		return nil, err
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	acct := domain.BeneficiaryAccount{AccountName: in.AccountName, AccountNo: in.AccountNo, Bank: in.Bank}
	if in.Beneficiary != domain.BeneficiaryOther {
		// Catalog vendor: snapshot its standing account details.
		acct, _ = domain.LookupBeneficiary(in.Beneficiary)
	}

	whtRate := domain.WHTRates[in.WHTOption]
	whtAmount := in.LabourCost * whtRate
	netLabour := in.LabourCost - whtAmount
	netRequested := in.MaterialsCost + netLabour

	state := workflow.NewState(u.chain)
	r := &domain.Requisition{
		RequestID:           id.NewID32(),
		RequesterStaffID:    requester.StaffID,
		RequesterName:       requester.Name,
		RequesterDepartment: requester.Department,
		Type:                domain.Type(in.Type),
		Title:               in.Title,
		Details:             in.Details,
		Beneficiary:         in.Beneficiary,
		AccountName:         acct.AccountName,
		AccountNo:           acct.AccountNo,
		Bank:                acct.Bank,
		MaterialsCost:       in.MaterialsCost,
		LabourCost:          in.LabourCost,
		WHTOption:           in.WHTOption,
		WHTAmount:           whtAmount,
		NetLabourCost:       netLabour,
		NetAmountRequested:  netRequested,
		AmountBudgeted:      in.AmountBudgeted,
		BudgetBalance:       in.AmountBudgeted - netRequested,
		DocumentRef:         in.DocumentRef,
		SubmittedDate:       u.now(),
	}
	r.SetWorkflowState(state)

	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	u.notifySubmitted(ctx, r)
	return toDTO(r), nil
}

// Decide runs the engine inside a row-locked transaction so concurrent
// approvers for the same pool serialize on the record.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*RequisitionDTO, error) {
	var dto *RequisitionDTO

	err := u.uow.WithinRequisitionTx(ctx, in.RequestID, func(r uow.Repos, rq *domain.Requisition) error {
		actor, err := r.Staff.GetByStaffID(ctx, in.StaffID)
		if err != nil {
			return err
		}
		state := rq.WorkflowState()
		if err := workflow.Decide(&state, u.chain, actor.Principal(), in.Decision, in.Comment, u.now()); err != nil {
			return err
		}
		rq.SetWorkflowState(state)
		if err := r.Requisitions.Save(ctx, rq); err != nil {
			return err
		}
		dto = toDTO(rq)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifyDecided(ctx, dto)
	return dto, nil
}

// ListPendingFor filters to requisitions the principal can act on now.
// Order is submission order from the store; any date-based re-sort is a
// presentation concern for the caller.
func (u *Usecase) ListPendingFor(ctx context.Context, staffID string) ([]RequisitionDTO, error) {
	actor, err := u.staff.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	p := actor.Principal()
	out := make([]RequisitionDTO, 0)
	for i := range all {
		if u.chain.IsEligibleApprover(all[i].WorkflowState(), p) {
			out = append(out, *toDTO(&all[i]))
		}
	}
	return out, nil
}

func (u *Usecase) ListMine(ctx context.Context, staffID string) ([]RequisitionDTO, error) {
	rs, err := u.repo.ListByRequester(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]RequisitionDTO, error) {
	rs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(rs), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequisitionDTO, error) {
	r, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toDTO(r), nil
}

func validateCreate(in CreateInput) error {
	fail := func(msg string) error { return fmt.Errorf("%w: %s", domain.ErrValidation, msg) }

	if t := domain.Type(in.Type); t != domain.TypeOpex && t != domain.TypeCapex {
		return fail("requisition_type must be Opex or Capex")
	}
	if strings.TrimSpace(in.Title) == "" {
		return fail("title is required")
	}
	if strings.TrimSpace(in.Details) == "" {
		return fail("details is required")
	}
	if in.MaterialsCost < 0 || in.LabourCost < 0 || in.AmountBudgeted < 0 {
		return fail("amounts must be non-negative")
	}
	if in.MaterialsCost+in.LabourCost <= 0 {
		return fail("requested amount must be positive")
	}
	if _, ok := domain.WHTRates[in.WHTOption]; !ok {
		return fail("wht_option must be one of None, 5%, 10%, 15%")
	}
	if in.Beneficiary == domain.BeneficiaryOther {
		if strings.TrimSpace(in.AccountName) == "" || strings.TrimSpace(in.AccountNo) == "" || strings.TrimSpace(in.Bank) == "" {
			return fail("manual beneficiary requires account name, account no and bank")
		}
	} else if _, ok := domain.LookupBeneficiary(in.Beneficiary); !ok {
		return fail("unknown beneficiary")
	}
	return nil
}

// notifySubmitted mails every pool on the route, the way the portal
// always has: all approvers learn of a new requisition at once.
func (u *Usecase) notifySubmitted(ctx context.Context, r *domain.Requisition) {
	if u.notifier == nil {
		return
	}
	summary := fmt.Sprintf("A new %s request titled %q for %.2f NGN has been submitted by %s (%s).",
		r.Type, r.Title, r.NetAmountRequested, r.RequesterName, r.RequesterDepartment)
	var msgs []notify.Message
	for _, st := range u.chain {
		members, err := u.staff.ListByPool(ctx, st.Department, st.GradeLevel)
		if err != nil {
			continue
		}
		for _, m := range members {
			msgs = append(msgs, notify.Message{Recipient: m.Email, Subject: "New " + string(r.Type) + " requisition", Body: summary})
		}
	}
	_ = u.notifier.Send(ctx, msgs...)
}

func (u *Usecase) notifyDecided(ctx context.Context, dto *RequisitionDTO) {
	if u.notifier == nil || dto == nil {
		return
	}
	switch workflow.Status(dto.FinalStatus) {
	case workflow.StatusPending:
		// Advance: tell the next pool it is their turn.
		if dto.CurrentStage >= 0 && dto.CurrentStage < len(u.chain) {
			st := u.chain[dto.CurrentStage]
			members, err := u.staff.ListByPool(ctx, st.Department, st.GradeLevel)
			if err != nil {
				return
			}
			body := fmt.Sprintf("Requisition %q now awaits %s sign-off.", dto.Title, st.Role)
			var msgs []notify.Message
			for _, m := range members {
				msgs = append(msgs, notify.Message{Recipient: m.Email, Subject: "Requisition awaiting your approval", Body: body})
			}
			_ = u.notifier.Send(ctx, msgs...)
		}
	default:
		// Terminal: tell the requester the outcome.
		requester, err := u.staff.GetByStaffID(ctx, dto.RequesterStaffID)
		if err != nil {
			return
		}
		body := fmt.Sprintf("Your requisition %q is %s.", dto.Title, dto.FinalStatus)
		_ = u.notifier.Send(ctx, notify.Message{Recipient: requester.Email, Subject: "Requisition " + dto.FinalStatus, Body: body})
	}
}
