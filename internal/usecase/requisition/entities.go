package requisition

import (
	"time"

	domain "polaris-hr-portal/internal/domain/requisition"
	"polaris-hr-portal/internal/domain/workflow"
)

type CreateInput struct {
	RequesterStaffID string
	Type             string
	Title            string
	Details          string
	Beneficiary      string
	AccountName      string // manual entry only
	AccountNo        string // manual entry only
	Bank             string // manual entry only
	MaterialsCost    float64
	LabourCost       float64
	AmountBudgeted   float64
	WHTOption        string
	DocumentRef      string
}

type DecideInput struct {
	RequestID string
	StaffID   string
	Decision  workflow.Decision
	Comment   string
}

type RequisitionDTO struct {
	RequestID           string                  `json:"request_id"`
	RequesterStaffID    string                  `json:"requester_staff_id"`
	RequesterName       string                  `json:"requester_name"`
	RequesterDepartment string                  `json:"requester_department"`
	Type                string                  `json:"requisition_type"`
	Title               string                  `json:"title"`
	Details             string                  `json:"details"`
	Beneficiary         string                  `json:"beneficiary"`
	AccountName         string                  `json:"account_name"`
	AccountNo           string                  `json:"account_no"`
	Bank                string                  `json:"bank"`
	MaterialsCost       float64                 `json:"materials_cost"`
	LabourCost          float64                 `json:"labour_cost"`
	WHTOption           string                  `json:"wht_option"`
	WHTAmount           float64                 `json:"wht_amount"`
	NetLabourCost       float64                 `json:"net_labour_cost"`
	NetAmountRequested  float64                 `json:"net_amount_requested"`
	AmountBudgeted      float64                 `json:"amount_budgeted"`
	BudgetBalance       float64                 `json:"budget_balance"`
	DocumentRef         string                  `json:"document_ref,omitempty"`
	CurrentStage        int                     `json:"current_stage"`
	FinalStatus         string                  `json:"final_status"`
	Stages              []workflow.StageRecord  `json:"stages"`
	History             []workflow.HistoryEntry `json:"history"`
	SubmittedDate       time.Time               `json:"submitted_date"`
}

func toDTO(r *domain.Requisition) *RequisitionDTO {
	return &RequisitionDTO{
		RequestID:           r.RequestID,
		RequesterStaffID:    r.RequesterStaffID,
		RequesterName:       r.RequesterName,
		RequesterDepartment: r.RequesterDepartment,
		Type:                string(r.Type),
		Title:               r.Title,
		Details:             r.Details,
		Beneficiary:         r.Beneficiary,
		AccountName:         r.AccountName,
		AccountNo:           r.AccountNo,
		Bank:                r.Bank,
		MaterialsCost:       r.MaterialsCost,
		LabourCost:          r.LabourCost,
		WHTOption:           r.WHTOption,
		WHTAmount:           r.WHTAmount,
		NetLabourCost:       r.NetLabourCost,
		NetAmountRequested:  r.NetAmountRequested,
		AmountBudgeted:      r.AmountBudgeted,
		BudgetBalance:       r.BudgetBalance,
		DocumentRef:         r.DocumentRef,
		CurrentStage:        r.CurrentStage,
		FinalStatus:         string(r.FinalStatus),
		Stages:              r.Stages,
		History:             r.History,
		SubmittedDate:       r.SubmittedDate,
	}
}

func toDTOs(rs []domain.Requisition) []RequisitionDTO {
	out := make([]RequisitionDTO, 0, len(rs))
	for i := range rs {
		out = append(out, *toDTO(&rs[i]))
	}
	return out
}
