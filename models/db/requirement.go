package dbmodels

import (
	"time"

	"hiring-hare-backend/models"

	"gorm.io/gorm"
)

type Requirement struct {
	BaseModel
	SeqNo             int64  `gorm:"uniqueIndex"`
	RequirementNumber string `gorm:"type:varchar(20);uniqueIndex"`
	PositionTitle     string `gorm:"type:varchar(200)"`

	DepartmentID string `gorm:"type:varchar(36)"`
	Department   *Department
	JobLevelID   string `gorm:"type:varchar(36)"`
	JobLevel     *JobLevel
	LocationID   string `gorm:"type:varchar(36)"`
	Location     *Location

	RequirementType   models.RequirementType `gorm:"type:varchar(50)"`
	EmploymentType    models.EmploymentType  `gorm:"type:varchar(50)"`
	WorkMode          models.WorkMode        `gorm:"type:varchar(50)"`
	NumberOfPositions int
	Priority          models.Priority `gorm:"type:varchar(50)"`

	JobDescription          string
	KeyResponsibilities     string
	RequiredQualifications  string
	PreferredQualifications string
	RequiredSkills          string
	Justification           string

	MinSalary float64
	MaxSalary float64
	Currency  string `gorm:"type:varchar(10)"`

	Status models.RequirementStatus `gorm:"type:varchar(50);index"`

	CreatedBy           string  `gorm:"type:varchar(36)"`
	HiringManagerID     string  `gorm:"type:varchar(36);index"`
	HiringManager       *User   `gorm:"foreignKey:HiringManagerID"`
	AssignedRecruiterID *string `gorm:"type:varchar(36)"`
	AssignedRecruiter   *User   `gorm:"foreignKey:AssignedRecruiterID"`

	IsPosted      bool
	PostingStatus models.PostingStatus `gorm:"type:varchar(50)"`

	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	AssignedAt  *time.Time
	PostedAt    *time.Time

	DeletedAt gorm.DeletedAt `gorm:"index"`

	Approvals []Approval `gorm:"foreignKey:RequirementID"`
}
