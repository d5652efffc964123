package mysql

import (
	"context"
	"errors"
	"testing"

	leaveDomain "polaris-hr-portal/internal/domain/leave"
	"polaris-hr-portal/internal/domain/workflow"
	"polaris-hr-portal/pkg/id"
)

func TestLeaveCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	l := makeLeave(requestID, "GID/00152")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.LeaveType != leaveDomain.TypeAnnual || got.LeaveTaken != 7 || got.LeaveRemaining != 13 {
		t.Fatalf("got %+v", got)
	}
	if got.FinalStatus != workflow.StatusPending || got.CurrentStage != 0 {
		t.Fatalf("workflow state = %d/%s", got.CurrentStage, got.FinalStatus)
	}
	if len(got.Stages) != len(testChain) {
		t.Fatalf("stages = %d, want %d", len(got.Stages), len(testChain))
	}
}

func TestLeaveGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	if _, err := repo.GetByRequestID(context.Background(), id.NewID32()); !errors.Is(err, leaveDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLeaveListByRequester(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)
	ctx := context.Background()

	mineID := id.NewID32()
	if err := repo.Create(ctx, makeLeave(mineID, "GID/00152")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeLeave(id.NewID32(), "GID/00200")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	mine, err := repo.ListByRequester(ctx, "GID/00152")
	if err != nil {
		t.Fatalf("ListByRequester: %v", err)
	}
	if len(mine) != 1 || mine[0].RequestID != mineID {
		t.Fatalf("mine = %+v", mine)
	}
}
