package appraisal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("appraisal not found")
	ErrValidation = errors.New("invalid appraisal payload")
)

// Goal is one weighted KPI objective. Scores run 0–5; Weight is a
// percentage share of the overall score.
type Goal struct {
	Objective               string  `json:"objective"`
	CollaboratingDepartment string  `json:"collaborating_department,omitempty"`
	Weight                  float64 `json:"weight"`
	SelfScore               float64 `json:"self_score"`
	SupervisorScore         float64 `json:"supervisor_score"`
}

type GoalList []Goal

func (g GoalList) Value() (driver.Value, error) {
	if g == nil {
		g = GoalList{}
	}
	return json.Marshal(g)
}

func (g *GoalList) Scan(v any) error {
	switch b := v.(type) {
	case []byte:
		return json.Unmarshal(b, g)
	case string:
		return json.Unmarshal([]byte(b), g)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", v)
	}
}

// Appraisal is one staff member's appraisal for a period: self-scored at
// submission, supervisor-scored at review.
type Appraisal struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	AppraisalID string `gorm:"column:appraisal_id;type:char(32);not null;uniqueIndex:ux_appraisals_appraisal_id_active" json:"appraisal_id"`

	StaffID string `gorm:"column:staff_id;size:32;index:idx_appraisals_staff" json:"staff_id"`
	Period  string `gorm:"column:period;size:32" json:"period"`

	Goals GoalList `gorm:"column:goals;type:json" json:"goals"`

	OverallSelfScore       float64 `gorm:"column:overall_self_score;type:decimal(6,2)" json:"overall_self_score"`
	OverallSupervisorScore float64 `gorm:"column:overall_supervisor_score;type:decimal(6,2)" json:"overall_supervisor_score"`
	SupervisorComment      string  `gorm:"column:supervisor_comment;type:text" json:"supervisor_comment,omitempty"`
	Recommendation         string  `gorm:"column:recommendation;type:text" json:"recommendation,omitempty"`
	Rating                 string  `gorm:"column:rating;size:32" json:"rating"`

	AppraisalDate time.Time      `gorm:"column:appraisal_date" json:"appraisal_date"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Appraisal) TableName() string { return "appraisals" }

// OverallScore folds goal scores into a weight-averaged 0-5 figure.
// Zero total weight scores zero.
func OverallScore(goals []Goal, supervisor bool) float64 {
	var totalWeight, weighted float64
	for _, g := range goals {
		totalWeight += g.Weight
		score := g.SelfScore
		if supervisor {
			score = g.SupervisorScore
		}
		weighted += score * g.Weight
	}
	if totalWeight <= 0 {
		return 0
	}
	return weighted / totalWeight
}

// RatingFor maps a supervisor score onto the portal's rating bands.
func RatingFor(supervisorScore float64) string {
	switch {
	case supervisorScore >= 4.5:
		return "Outstanding (5)"
	case supervisorScore >= 3.5:
		return "Exceed Expectation (4)"
	case supervisorScore >= 2.5:
		return "Meet Expectation (3)"
	case supervisorScore >= 1.5:
		return "Needs Improvement (2)"
	case supervisorScore > 0:
		return "Unsatisfactory (1)"
	default:
		return "Not yet rated by supervisor"
	}
}
