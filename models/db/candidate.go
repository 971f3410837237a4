package dbmodels

import (
	"hiring-hare-backend/models"

	"gorm.io/gorm"
)

type Candidate struct {
	BaseModel
	RequirementID string                 `gorm:"type:varchar(36);index"`
	Requirement   *Requirement           `gorm:"foreignKey:RequirementID"`
	FirstName     string                 `gorm:"type:varchar(150)"`
	LastName      string                 `gorm:"type:varchar(150)"`
	Email         string                 `gorm:"type:varchar(255);index"`
	PhoneNumber   string                 `gorm:"type:varchar(20)"`
	ResumeURL     string                 `gorm:"type:varchar(500)"`
	Source        string                 `gorm:"type:varchar(100)"`
	Status        models.CandidateStatus `gorm:"type:varchar(50);index"`
	Notes         string
	CreatedBy     string         `gorm:"type:varchar(36)"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
