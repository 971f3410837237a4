package dbmodels

import (
	"time"

	"hiring-hare-backend/models"
)

// Approval rows are owned by their requirement and are never deleted,
// each resolves exactly once.
type Approval struct {
	BaseModel
	RequirementID string                `gorm:"type:varchar(36);index"`
	Requirement   *Requirement          `gorm:"foreignKey:RequirementID"`
	ApproverID    string                `gorm:"type:varchar(36);index"`
	Approver      *User                 `gorm:"foreignKey:ApproverID"`
	Stage         models.ApprovalStage  `gorm:"type:varchar(50)"`
	Status        models.ApprovalStatus `gorm:"type:varchar(50);index"`
	Comments      string
	SubmittedAt   time.Time
	ReviewedAt    *time.Time
}
