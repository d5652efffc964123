// Package workflow is the multi-stage approval engine. It is the sole
// mutator of a request's approval state: every leave request and every
// opex/capex requisition embeds a State and routes all decisions through
// Decide. The package is pure (no I/O, no clock reads); the usecase
// layer owns persistence and timestamps.
package workflow

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// TerminalStage marks a request that has left the chain (approved at the
// last stage, or rejected at any stage).
const TerminalStage = -1

var (
	ErrNotPending     = errors.New("request is no longer pending")
	ErrNotAuthorized  = errors.New("principal is not the approver for the current stage")
	ErrAlreadyDecided = errors.New("current stage already has a decision")
	ErrBadDecision    = errors.New("decision must be approve or reject")
)

// Principal is the resolved identity of an actor, owned by the staff
// directory. Eligibility is matched on (Department, GradeLevel), never on
// the individual, so several people can legitimately share one stage.
type Principal struct {
	StaffID    string
	Name       string
	Department string
	GradeLevel string
}

// StageRecord is the per-stage decision slot embedded in a request.
type StageRecord struct {
	Role         string     `json:"role"`
	Status       Status     `json:"status"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	Comment      string     `json:"comment,omitempty"`
}

// HistoryEntry is one line of the append-only audit trail. A fully
// serialized request carries the whole trail, so an auditor can
// reconstruct every decision without consulting any other table.
type HistoryEntry struct {
	Role     string    `json:"role"`
	Approver string    `json:"approver"`
	Date     time.Time `json:"date"`
	Comment  string    `json:"comment,omitempty"`
	Decision Status    `json:"decision"`
}

// State is the workflow portion of a request. Invariants:
//
//   - FinalStatus == Pending  ⇔ 0 <= CurrentStage < len(chain)
//   - FinalStatus != Pending  ⇒ CurrentStage == TerminalStage
//   - every stage before CurrentStage is Approved (no skipping)
//   - a rejection is terminal and leaves later stages untouched
type State struct {
	CurrentStage int            `json:"current_stage"`
	FinalStatus  Status         `json:"final_status"`
	Stages       []StageRecord  `json:"stages"`
	History      []HistoryEntry `json:"history"`
}

// NewState initializes workflow state for a freshly submitted request:
// stage 0, every stage record Pending, empty history.
func NewState(c Chain) State {
	stages := make([]StageRecord, len(c))
	for i, st := range c {
		stages[i] = StageRecord{Role: st.Role, Status: StatusPending}
	}
	return State{
		CurrentStage: 0,
		FinalStatus:  StatusPending,
		Stages:       stages,
		History:      []HistoryEntry{},
	}
}

// Decide applies one approver decision to s. Guards run in order:
// terminal state, then eligibility, then duplicate-decision. An approval
// advances the stage (or finalizes on the last one); a rejection is
// immediately terminal. today stamps the stage record and the history
// entry; callers inject it for testability.
func Decide(s *State, c Chain, p Principal, d Decision, comment string, today time.Time) error {
	if d != DecisionApprove && d != DecisionReject {
		return ErrBadDecision
	}
	if s.FinalStatus != StatusPending {
		return ErrNotPending
	}
	if !c.IsEligibleApprover(*s, p) {
		return ErrNotAuthorized
	}
	idx := s.CurrentStage
	if s.Stages[idx].Status != StatusPending {
		// Replayed or concurrently duplicated submit against a stale copy.
		return ErrAlreadyDecided
	}

	outcome := StatusApproved
	if d == DecisionReject {
		outcome = StatusRejected
	}
	date := today
	s.Stages[idx] = StageRecord{
		Role:         c[idx].Role,
		Status:       outcome,
		ApprovedBy:   p.Name,
		ApprovalDate: &date,
		Comment:      comment,
	}
	s.History = append(s.History, HistoryEntry{
		Role:     c[idx].Role,
		Approver: p.Name,
		Date:     today,
		Comment:  comment,
		Decision: outcome,
	})

	switch {
	case outcome == StatusRejected:
		s.FinalStatus = StatusRejected
		s.CurrentStage = TerminalStage
	case idx == len(c)-1:
		s.FinalStatus = StatusApproved
		s.CurrentStage = TerminalStage
	default:
		s.CurrentStage = idx + 1
	}
	return nil
}
