package leave

import (
	"time"

	domain "polaris-hr-portal/internal/domain/leave"
	"polaris-hr-portal/internal/domain/workflow"
)

type CreateInput struct {
	RequesterStaffID string
	Title            string
	Details          string
	LeaveType        string
	Reliever         string
	EntitledDays     int
	StartDate        time.Time
	EndDate          time.Time
}

type DecideInput struct {
	RequestID string
	StaffID   string
	Decision  workflow.Decision
	Comment   string
}

type LeaveDTO struct {
	RequestID           string                  `json:"request_id"`
	RequesterStaffID    string                  `json:"requester_staff_id"`
	RequesterName       string                  `json:"requester_name"`
	RequesterDepartment string                  `json:"requester_department"`
	Title               string                  `json:"title"`
	Details             string                  `json:"details"`
	LeaveType           string                  `json:"leave_type"`
	Reliever            string                  `json:"reliever"`
	EntitledDays        int                     `json:"entitled_days"`
	StartDate           time.Time               `json:"start_date"`
	EndDate             time.Time               `json:"end_date"`
	LeaveTaken          int                     `json:"leave_taken"`
	LeaveRemaining      int                     `json:"leave_remaining"`
	CurrentStage        int                     `json:"current_stage"`
	FinalStatus         string                  `json:"final_status"`
	Stages              []workflow.StageRecord  `json:"stages"`
	History             []workflow.HistoryEntry `json:"history"`
	SubmittedDate       time.Time               `json:"submitted_date"`
}

func toDTO(l *domain.LeaveRequest) *LeaveDTO {
	return &LeaveDTO{
		RequestID:           l.RequestID,
		RequesterStaffID:    l.RequesterStaffID,
		RequesterName:       l.RequesterName,
		RequesterDepartment: l.RequesterDepartment,
		Title:               l.Title,
		Details:             l.Details,
		LeaveType:           string(l.LeaveType),
		Reliever:            l.Reliever,
		EntitledDays:        l.EntitledDays,
		StartDate:           l.StartDate,
		EndDate:             l.EndDate,
		LeaveTaken:          l.LeaveTaken,
		LeaveRemaining:      l.LeaveRemaining,
		CurrentStage:        l.CurrentStage,
		FinalStatus:         string(l.FinalStatus),
		Stages:              l.Stages,
		History:             l.History,
		SubmittedDate:       l.SubmittedDate,
	}
}

func toDTOs(ls []domain.LeaveRequest) []LeaveDTO {
	out := make([]LeaveDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}
