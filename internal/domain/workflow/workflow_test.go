package workflow

import (
	"errors"
	"testing"
	"time"
)

var testChain = Chain{
	{Role: "Admin Manager", Department: "Administration", GradeLevel: "Manager"},
	{Role: "HR Manager", Department: "HR", GradeLevel: "Manager"},
	{Role: "Managing Director", Department: "Executive", GradeLevel: "MD"},
}

var (
	adminMgr = Principal{StaffID: "GID/00101", Name: "ADE BALOGUN", Department: "Administration", GradeLevel: "Manager"}
	hrMgr    = Principal{StaffID: "GID/00102", Name: "NGOZI EZE", Department: "HR", GradeLevel: "Manager"}
	md       = Principal{StaffID: "GID/00103", Name: "TUNDE OKAFOR", Department: "Executive", GradeLevel: "MD"}
	finMgr   = Principal{StaffID: "GID/00104", Name: "BISI ADEYEMI", Department: "Finance", GradeLevel: "Manager"}
)

var day = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewState(t *testing.T) {
	s := NewState(testChain)

	if s.CurrentStage != 0 {
		t.Fatalf("CurrentStage = %d, want 0", s.CurrentStage)
	}
	if s.FinalStatus != StatusPending {
		t.Fatalf("FinalStatus = %s, want Pending", s.FinalStatus)
	}
	if len(s.Stages) != len(testChain) {
		t.Fatalf("stage records = %d, want %d", len(s.Stages), len(testChain))
	}
	for i, rec := range s.Stages {
		if rec.Status != StatusPending {
			t.Fatalf("stage %d status = %s, want Pending", i, rec.Status)
		}
		if rec.Role != testChain[i].Role {
			t.Fatalf("stage %d role = %q, want %q", i, rec.Role, testChain[i].Role)
		}
	}
	if len(s.History) != 0 {
		t.Fatalf("history length = %d, want 0", len(s.History))
	}
}

func TestIsEligibleApprover(t *testing.T) {
	tests := []struct {
		name  string
		state State
		p     Principal
		want  bool
	}{
		{"stage 0 match", NewState(testChain), adminMgr, true},
		{"stage 0 wrong department", NewState(testChain), finMgr, false},
		{"stage 0 wrong grade", NewState(testChain), Principal{Department: "Administration", GradeLevel: "Officer"}, false},
		{"terminal approved", State{CurrentStage: TerminalStage, FinalStatus: StatusApproved}, md, false},
		{"terminal rejected", State{CurrentStage: TerminalStage, FinalStatus: StatusRejected}, md, false},
		{"stage out of bounds", State{CurrentStage: len(testChain), FinalStatus: StatusPending}, md, false},
		{"negative stage but pending", State{CurrentStage: -2, FinalStatus: StatusPending}, adminMgr, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testChain.IsEligibleApprover(tt.state, tt.p); got != tt.want {
				t.Fatalf("IsEligibleApprover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecide_ApproveAdvances(t *testing.T) {
	s := NewState(testChain)

	if err := Decide(&s, testChain, adminMgr, DecisionApprove, "ok", day); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if s.CurrentStage != 1 {
		t.Fatalf("CurrentStage = %d, want 1", s.CurrentStage)
	}
	if s.FinalStatus != StatusPending {
		t.Fatalf("FinalStatus = %s, want Pending", s.FinalStatus)
	}
	rec := s.Stages[0]
	if rec.Status != StatusApproved || rec.ApprovedBy != adminMgr.Name || rec.Comment != "ok" {
		t.Fatalf("stage 0 record = %+v", rec)
	}
	if rec.ApprovalDate == nil || !rec.ApprovalDate.Equal(day) {
		t.Fatalf("stage 0 approval date = %v, want %v", rec.ApprovalDate, day)
	}
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.History))
	}
	if h := s.History[0]; h.Decision != StatusApproved || h.Role != "Admin Manager" || h.Approver != adminMgr.Name {
		t.Fatalf("history entry = %+v", h)
	}
}

func TestDecide_FullApprovalRun(t *testing.T) {
	s := NewState(testChain)

	for i, p := range []Principal{adminMgr, hrMgr, md} {
		if err := Decide(&s, testChain, p, DecisionApprove, "ok", day.AddDate(0, 0, i)); err != nil {
			t.Fatalf("stage %d Decide: %v", i, err)
		}
	}
	if s.FinalStatus != StatusApproved {
		t.Fatalf("FinalStatus = %s, want Approved", s.FinalStatus)
	}
	if s.CurrentStage != TerminalStage {
		t.Fatalf("CurrentStage = %d, want TerminalStage", s.CurrentStage)
	}
	if len(s.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(s.History))
	}
	for i, rec := range s.Stages {
		if rec.Status != StatusApproved {
			t.Fatalf("stage %d status = %s, want Approved", i, rec.Status)
		}
	}
}

func TestDecide_RejectionIsTerminal(t *testing.T) {
	s := NewState(testChain)

	if err := Decide(&s, testChain, adminMgr, DecisionApprove, "ok", day); err != nil {
		t.Fatalf("stage 0: %v", err)
	}
	if err := Decide(&s, testChain, hrMgr, DecisionReject, "budget", day); err != nil {
		t.Fatalf("stage 1: %v", err)
	}

	if s.FinalStatus != StatusRejected {
		t.Fatalf("FinalStatus = %s, want Rejected", s.FinalStatus)
	}
	if s.CurrentStage != TerminalStage {
		t.Fatalf("CurrentStage = %d, want TerminalStage", s.CurrentStage)
	}
	if s.Stages[1].Status != StatusRejected {
		t.Fatalf("stage 1 status = %s, want Rejected", s.Stages[1].Status)
	}
	// Rejection halts; downstream stages are left untouched.
	if s.Stages[2].Status != StatusPending {
		t.Fatalf("stage 2 status = %s, want Pending", s.Stages[2].Status)
	}
	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}

	// No decision may follow a terminal state.
	if err := Decide(&s, testChain, md, DecisionApprove, "", day); !errors.Is(err, ErrNotPending) {
		t.Fatalf("decide after terminal = %v, want ErrNotPending", err)
	}
}

func TestDecide_Guards(t *testing.T) {
	tests := []struct {
		name    string
		state   func() State
		p       Principal
		d       Decision
		wantErr error
	}{
		{
			name:    "wrong pool at stage 0",
			state:   func() State { return NewState(testChain) },
			p:       finMgr,
			d:       DecisionApprove,
			wantErr: ErrNotAuthorized,
		},
		{
			name: "earlier approver not eligible later",
			state: func() State {
				s := NewState(testChain)
				if err := Decide(&s, testChain, adminMgr, DecisionApprove, "", day); err != nil {
					t.Fatal(err)
				}
				return s
			},
			p:       adminMgr,
			d:       DecisionApprove,
			wantErr: ErrNotAuthorized,
		},
		{
			name: "terminal approved",
			state: func() State {
				s := NewState(testChain)
				for _, p := range []Principal{adminMgr, hrMgr, md} {
					if err := Decide(&s, testChain, p, DecisionApprove, "", day); err != nil {
						t.Fatal(err)
					}
				}
				return s
			},
			p:       md,
			d:       DecisionApprove,
			wantErr: ErrNotPending,
		},
		{
			name: "stale snapshot double submit",
			state: func() State {
				// Simulate a copy whose stage record was already decided but
				// whose cursor was not advanced (unsynchronized replay).
				s := NewState(testChain)
				now := day
				s.Stages[0].Status = StatusApproved
				s.Stages[0].ApprovedBy = adminMgr.Name
				s.Stages[0].ApprovalDate = &now
				return s
			},
			p:       adminMgr,
			d:       DecisionApprove,
			wantErr: ErrAlreadyDecided,
		},
		{
			name:    "unknown decision token",
			state:   func() State { return NewState(testChain) },
			p:       adminMgr,
			d:       Decision("maybe"),
			wantErr: ErrBadDecision,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state()
			before := len(s.History)
			err := Decide(&s, testChain, tt.p, tt.d, "", day)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decide err = %v, want %v", err, tt.wantErr)
			}
			if len(s.History) != before {
				t.Fatalf("failed decide mutated history: %d -> %d", before, len(s.History))
			}
		})
	}
}

// Sequential invariant: every stage before the cursor is Approved, in any
// reachable state.
func TestDecide_SequentialInvariant(t *testing.T) {
	s := NewState(testChain)
	principals := []Principal{adminMgr, hrMgr, md}

	for i := 0; i < len(testChain); i++ {
		for k := 0; k < s.CurrentStage; k++ {
			if s.Stages[k].Status != StatusApproved {
				t.Fatalf("stage %d before cursor %d is %s", k, s.CurrentStage, s.Stages[k].Status)
			}
		}
		if err := Decide(&s, testChain, principals[i], DecisionApprove, "", day); err != nil {
			t.Fatalf("stage %d: %v", i, err)
		}
	}
}

func TestDecide_DoubleSubmitSameSnapshot(t *testing.T) {
	s := NewState(testChain)

	if err := Decide(&s, testChain, adminMgr, DecisionApprove, "ok", day); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// Second submit against the already-updated state: the cursor moved, so
	// the same principal is no longer the stage approver.
	if err := Decide(&s, testChain, adminMgr, DecisionApprove, "ok", day); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("second submit = %v, want ErrNotAuthorized", err)
	}
	if len(s.History) != 1 {
		t.Fatalf("history length = %d, want exactly 1 state change", len(s.History))
	}
}

func TestDecide_SingleStageChain(t *testing.T) {
	one := Chain{{Role: "Managing Director", Department: "Executive", GradeLevel: "MD"}}
	s := NewState(one)

	if err := Decide(&s, one, md, DecisionApprove, "", day); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if s.FinalStatus != StatusApproved || s.CurrentStage != TerminalStage {
		t.Fatalf("state = %+v, want terminal approved", s)
	}
}
