package mysql

import (
	"testing"
	"time"

	apprDomain "polaris-hr-portal/internal/domain/appraisal"
	leaveDomain "polaris-hr-portal/internal/domain/leave"
	reqDomain "polaris-hr-portal/internal/domain/requisition"
	staffDomain "polaris-hr-portal/internal/domain/staff"
	"polaris-hr-portal/internal/domain/workflow"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testChain = workflow.Chain{
	{Role: "Admin Manager", Department: "Admin", GradeLevel: "Manager"},
	{Role: "HR Manager", Department: "HR", GradeLevel: "Manager"},
	{Role: "Managing Director", Department: "Executive", GradeLevel: "MD"},
}

// openTestDB creates an in-memory sqlite DB with every portal table. The
// schemas carry no mysql-only column types, so the domain models migrate
// as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&reqDomain.Requisition{},
		&leaveDomain.LeaveRequest{},
		&staffDomain.Staff{},
		&apprDomain.Appraisal{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeRequisition(requestID, staffID string) *reqDomain.Requisition {
	r := &reqDomain.Requisition{
		RequestID:           requestID,
		RequesterStaffID:    staffID,
		RequesterName:       "ABDULLAHI IBRAHIM",
		RequesterDepartment: "Operations",
		Type:                reqDomain.TypeOpex,
		Title:               "Fix faulty door",
		Details:             "Door repair in HR office.",
		Beneficiary:         "Bestway Engineering Services Ltd",
		AccountName:         "Benjamin",
		AccountNo:           "1234567890",
		Bank:                "GTB",
		MaterialsCost:       30000,
		LabourCost:          20000,
		WHTOption:           "10%",
		WHTAmount:           2000,
		NetLabourCost:       18000,
		NetAmountRequested:  48000,
		AmountBudgeted:      55000,
		BudgetBalance:       7000,
		SubmittedDate:       time.Now().UTC(),
	}
	r.SetWorkflowState(workflow.NewState(testChain))
	return r
}

func makeLeave(requestID, staffID string) *leaveDomain.LeaveRequest {
	l := &leaveDomain.LeaveRequest{
		RequestID:           requestID,
		RequesterStaffID:    staffID,
		RequesterName:       "ABDULLAHI IBRAHIM",
		RequesterDepartment: "Operations",
		Title:               "Annual leave",
		Details:             "Family visit.",
		LeaveType:           leaveDomain.TypeAnnual,
		Reliever:            "CHIAMAKA OBI",
		EntitledDays:        20,
		StartDate:           time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		LeaveTaken:          7,
		LeaveRemaining:      13,
		SubmittedDate:       time.Now().UTC(),
	}
	l.SetWorkflowState(workflow.NewState(testChain))
	return l
}
