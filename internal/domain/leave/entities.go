package leave

import (
	"errors"
	"time"

	"polaris-hr-portal/internal/domain/workflow"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("leave request not found")
	ErrValidation = errors.New("invalid leave request payload")
)

type LeaveType string

const (
	TypeAnnual      LeaveType = "Annual Leave"
	TypeCasual      LeaveType = "Casual Leave"
	TypeExam        LeaveType = "Exam Leave"
	TypeMaternity   LeaveType = "Maternity Leave"
	TypeBereavement LeaveType = "Bereavement Leave"
	TypeSick        LeaveType = "Sick Leave"
)

// LeaveRequest goes through the same approval chain as a requisition.
// LeaveTaken and LeaveRemaining are computed at submission; a negative
// remainder is allowed (flagged to approvers, not rejected).
type LeaveRequest struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_leaves_request_id_active" json:"request_id"`

	RequesterStaffID    string `gorm:"column:requester_staff_id;size:32;index:idx_leaves_requester" json:"requester_staff_id"`
	RequesterName       string `gorm:"column:requester_name;size:120" json:"requester_name"`
	RequesterDepartment string `gorm:"column:requester_department;size:64" json:"requester_department"`

	Title          string    `gorm:"column:title;size:200" json:"title"`
	Details        string    `gorm:"column:details;type:text" json:"details"`
	LeaveType      LeaveType `gorm:"column:leave_type;size:32" json:"leave_type"`
	Reliever       string    `gorm:"column:reliever;size:120" json:"reliever"`
	EntitledDays   int       `gorm:"column:entitled_days" json:"entitled_days"`
	StartDate      time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate        time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	LeaveTaken     int       `gorm:"column:leave_taken" json:"leave_taken"`
	LeaveRemaining int       `gorm:"column:leave_remaining" json:"leave_remaining"`

	CurrentStage int                   `gorm:"column:current_stage" json:"current_stage"`
	FinalStatus  workflow.Status       `gorm:"column:final_status;size:16;index" json:"final_status"`
	Stages       workflow.StageRecords `gorm:"column:stages;type:json" json:"stages"`
	History      workflow.HistoryLog   `gorm:"column:history;type:json" json:"history"`

	SubmittedDate time.Time      `gorm:"column:submitted_date" json:"submitted_date"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

func (l *LeaveRequest) WorkflowState() workflow.State {
	return workflow.State{
		CurrentStage: l.CurrentStage,
		FinalStatus:  l.FinalStatus,
		Stages:       []workflow.StageRecord(l.Stages),
		History:      []workflow.HistoryEntry(l.History),
	}
}

func (l *LeaveRequest) SetWorkflowState(s workflow.State) {
	l.CurrentStage = s.CurrentStage
	l.FinalStatus = s.FinalStatus
	l.Stages = workflow.StageRecords(s.Stages)
	l.History = workflow.HistoryLog(s.History)
}
