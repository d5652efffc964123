package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	reqDomain "polaris-hr-portal/internal/domain/requisition"
	"polaris-hr-portal/internal/domain/workflow"
	"polaris-hr-portal/pkg/id"
)

func TestRequisitionCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequisitionRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	r := makeRequisition(requestID, "GID/00152")
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Title != r.Title || got.Type != reqDomain.TypeOpex {
		t.Fatalf("got %+v", got)
	}
	// JSON columns round-trip the full workflow state.
	if len(got.Stages) != len(testChain) {
		t.Fatalf("stages = %d, want %d", len(got.Stages), len(testChain))
	}
	if got.Stages[0].Role != "Admin Manager" || got.Stages[0].Status != workflow.StatusPending {
		t.Fatalf("stage 0 = %+v", got.Stages[0])
	}
	if len(got.History) != 0 {
		t.Fatalf("history = %d, want 0", len(got.History))
	}
}

func TestRequisitionGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequisitionRepository(db)

	if _, err := repo.GetByRequestID(context.Background(), id.NewID32()); !errors.Is(err, reqDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByRequestIDForUpdate(context.Background(), id.NewID32()); !errors.Is(err, reqDomain.ErrNotFound) {
		t.Fatalf("ForUpdate err = %v, want ErrNotFound", err)
	}
}

func TestRequisitionSavePersistsDecision(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequisitionRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	r := makeRequisition(requestID, "GID/00152")
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	state := r.WorkflowState()
	p := workflow.Principal{StaffID: "GID/00101", Name: "ADE BALOGUN", Department: "Admin", GradeLevel: "Manager"}
	if err := workflow.Decide(&state, testChain, p, workflow.DecisionApprove, "ok", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	r.SetWorkflowState(state)
	if err := repo.Save(ctx, r); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.CurrentStage != 1 {
		t.Fatalf("CurrentStage = %d, want 1", got.CurrentStage)
	}
	if got.Stages[0].Status != workflow.StatusApproved || got.Stages[0].ApprovedBy != "ADE BALOGUN" {
		t.Fatalf("stage 0 = %+v", got.Stages[0])
	}
	if len(got.History) != 1 || got.History[0].Decision != workflow.StatusApproved {
		t.Fatalf("history = %+v", got.History)
	}
}

func TestRequisitionLists(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequisitionRepository(db)
	ctx := context.Background()

	ids := []string{id.NewID32(), id.NewID32(), id.NewID32()}
	owners := []string{"GID/00152", "GID/00200", "GID/00152"}
	for i, rid := range ids {
		if err := repo.Create(ctx, makeRequisition(rid, owners[i])); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll = %d, want 3", len(all))
	}
	// Submission order
	for i := range all {
		if all[i].RequestID != ids[i] {
			t.Fatalf("position %d = %s, want %s", i, all[i].RequestID, ids[i])
		}
	}

	mine, err := repo.ListByRequester(ctx, "GID/00152")
	if err != nil {
		t.Fatalf("ListByRequester: %v", err)
	}
	if len(mine) != 2 || mine[0].RequestID != ids[0] || mine[1].RequestID != ids[2] {
		t.Fatalf("mine = %+v", mine)
	}
}
