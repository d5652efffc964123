package requisition

import (
	"errors"
	"time"

	"polaris-hr-portal/internal/domain/workflow"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("requisition not found")
	ErrValidation = errors.New("invalid requisition payload")
)

type Type string

const (
	TypeOpex  Type = "Opex"
	TypeCapex Type = "Capex"
)

// WHT options offered by the requisition form. The percentage applies to
// labour/services cost only, never to materials.
var WHTRates = map[string]float64{
	"None": 0,
	"5%":   0.05,
	"10%":  0.10,
	"15%":  0.15,
}

// Requisition is an opex/capex request under multi-stage approval. The
// requester block is a snapshot taken at submission; later profile edits
// do not rewrite it. Stages and History serialize as JSON columns so one
// row carries the complete decision trail.
type Requisition struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RequestID string `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_requisitions_request_id_active" json:"request_id"`

	RequesterStaffID    string `gorm:"column:requester_staff_id;size:32;index:idx_requisitions_requester" json:"requester_staff_id"`
	RequesterName       string `gorm:"column:requester_name;size:120" json:"requester_name"`
	RequesterDepartment string `gorm:"column:requester_department;size:64" json:"requester_department"`

	Type    Type   `gorm:"column:requisition_type;size:8" json:"requisition_type"`
	Title   string `gorm:"column:title;size:200" json:"title"`
	Details string `gorm:"column:details;type:text" json:"details"`

	Beneficiary string `gorm:"column:beneficiary;size:120" json:"beneficiary"`
	AccountName string `gorm:"column:account_name;size:120" json:"account_name"`
	AccountNo   string `gorm:"column:account_no;size:32" json:"account_no"`
	Bank        string `gorm:"column:bank;size:64" json:"bank"`

	MaterialsCost      float64 `gorm:"column:materials_cost;type:decimal(18,2)" json:"materials_cost"`
	LabourCost         float64 `gorm:"column:labour_cost;type:decimal(18,2)" json:"labour_cost"`
	WHTOption          string  `gorm:"column:wht_option;size:8" json:"wht_option"`
	WHTAmount          float64 `gorm:"column:wht_amount;type:decimal(18,2)" json:"wht_amount"`
	NetLabourCost      float64 `gorm:"column:net_labour_cost;type:decimal(18,2)" json:"net_labour_cost"`
	NetAmountRequested float64 `gorm:"column:net_amount_requested;type:decimal(18,2)" json:"net_amount_requested"`
	AmountBudgeted     float64 `gorm:"column:amount_budgeted;type:decimal(18,2)" json:"amount_budgeted"`
	BudgetBalance      float64 `gorm:"column:budget_balance;type:decimal(18,2)" json:"budget_balance"`

	// Opaque handle to a supporting document; never interpreted here.
	DocumentRef string `gorm:"column:document_ref;type:text" json:"document_ref,omitempty"`

	CurrentStage int                   `gorm:"column:current_stage" json:"current_stage"`
	FinalStatus  workflow.Status       `gorm:"column:final_status;size:16;index" json:"final_status"`
	Stages       workflow.StageRecords `gorm:"column:stages;type:json" json:"stages"`
	History      workflow.HistoryLog   `gorm:"column:history;type:json" json:"history"`

	SubmittedDate time.Time      `gorm:"column:submitted_date" json:"submitted_date"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Requisition) TableName() string { return "requisitions" }

// WorkflowState assembles the engine's view of this requisition.
func (r *Requisition) WorkflowState() workflow.State {
	return workflow.State{
		CurrentStage: r.CurrentStage,
		FinalStatus:  r.FinalStatus,
		Stages:       []workflow.StageRecord(r.Stages),
		History:      []workflow.HistoryEntry(r.History),
	}
}

// SetWorkflowState writes an engine-computed state back onto the row.
func (r *Requisition) SetWorkflowState(s workflow.State) {
	r.CurrentStage = s.CurrentStage
	r.FinalStatus = s.FinalStatus
	r.Stages = workflow.StageRecords(s.Stages)
	r.History = workflow.HistoryLog(s.History)
}
