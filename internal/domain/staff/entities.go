package staff

import (
	"errors"
	"time"

	"polaris-hr-portal/internal/domain/workflow"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("staff not found")

// Staff is one row of the user directory. The workflow engine only ever
// sees the Principal projection; profile editing is a plain CRUD concern
// handled elsewhere.
type Staff struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	StaffID    string         `gorm:"column:staff_id;size:32;uniqueIndex:ux_staff_staff_id_active" json:"staff_id"`
	Name       string         `gorm:"column:name;size:120" json:"name"`
	Email      string         `gorm:"column:email;size:120" json:"email"`
	Department string         `gorm:"column:department;size:64;index:idx_staff_pool" json:"department"`
	GradeLevel string         `gorm:"column:grade_level;size:64;index:idx_staff_pool" json:"grade_level"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Staff) TableName() string { return "staff" }

// Principal projects the directory row into the engine's actor identity.
func (s *Staff) Principal() workflow.Principal {
	return workflow.Principal{
		StaffID:    s.StaffID,
		Name:       s.Name,
		Department: s.Department,
		GradeLevel: s.GradeLevel,
	}
}
