package reqapimodels

import (
	"time"

	"hiring-hare-backend/models"
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

type RequirementData struct {
	PositionTitle           string                 `json:"position_title" validate:"required,max=200"`
	DepartmentID            string                 `json:"department_id" validate:"required"`
	JobLevelID              string                 `json:"job_level_id" validate:"required"`
	LocationID              string                 `json:"location_id" validate:"required"`
	RequirementType         models.RequirementType `json:"requirement_type" validate:"required"`
	EmploymentType          models.EmploymentType  `json:"employment_type" validate:"required"`
	WorkMode                models.WorkMode        `json:"work_mode" validate:"required"`
	NumberOfPositions       int                    `json:"number_of_positions" validate:"required,min=1"`
	Priority                models.Priority        `json:"priority" validate:"required"`
	JobDescription          string                 `json:"job_description" validate:"required"`
	KeyResponsibilities     string                 `json:"key_responsibilities"`
	RequiredQualifications  string                 `json:"required_qualifications" validate:"required"`
	PreferredQualifications string                 `json:"preferred_qualifications"`
	RequiredSkills          string                 `json:"required_skills"`
	Justification           string                 `json:"justification" validate:"required"`
	MinSalary               float64                `json:"min_salary" validate:"min=0"`
	MaxSalary               float64                `json:"max_salary" validate:"min=0"`
	Currency                string                 `json:"currency"`
}

func (r RequirementData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RequirementFilter struct {
	apimodels.Pagination
	Status models.RequirementStatus `json:"status"`
	Search string                   `json:"search"` // matches position title or requirement number
}

type ResolveData struct {
	Comments string `json:"comments"`
}

func (r ResolveData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RejectData struct {
	Comments string `json:"comments" validate:"required,min=10"`
}

func (r RejectData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RequirementView struct {
	ID                  string                   `json:"id"`
	RequirementNumber   string                   `json:"requirement_number"`
	PositionTitle       string                   `json:"position_title"`
	DepartmentID        string                   `json:"department_id"`
	DepartmentName      string                   `json:"department_name,omitempty"`
	JobLevelID          string                   `json:"job_level_id"`
	JobLevelName        string                   `json:"job_level_name,omitempty"`
	LocationID          string                   `json:"location_id"`
	LocationName        string                   `json:"location_name,omitempty"`
	RequirementType     models.RequirementType   `json:"requirement_type"`
	EmploymentType      models.EmploymentType    `json:"employment_type"`
	WorkMode            models.WorkMode          `json:"work_mode"`
	NumberOfPositions   int                      `json:"number_of_positions"`
	Priority            models.Priority          `json:"priority"`
	JobDescription      string                   `json:"job_description"`
	KeyResponsibilities string                   `json:"key_responsibilities,omitempty"`
	RequiredSkills      string                   `json:"required_skills,omitempty"`
	Justification       string                   `json:"justification,omitempty"`
	MinSalary           float64                  `json:"min_salary,omitempty"`
	MaxSalary           float64                  `json:"max_salary,omitempty"`
	Currency            string                   `json:"currency,omitempty"`
	Status              models.RequirementStatus `json:"status"`
	CreatedBy           string                   `json:"created_by"`
	HiringManagerID     string                   `json:"hiring_manager_id"`
	HiringManagerName   string                   `json:"hiring_manager_name,omitempty"`
	AssignedRecruiterID string                   `json:"assigned_recruiter_id,omitempty"`
	IsPosted            bool                     `json:"is_posted"`
	PostingStatus       models.PostingStatus     `json:"posting_status,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	SubmittedAt         *time.Time               `json:"submitted_at,omitempty"`
	ApprovedAt          *time.Time               `json:"approved_at,omitempty"`
	AssignedAt          *time.Time               `json:"assigned_at,omitempty"`
	PostedAt            *time.Time               `json:"posted_at,omitempty"`
}

func RequirementConvert(rec dbmodels.Requirement) RequirementView {
	view := RequirementView{
		ID:                  rec.ID,
		RequirementNumber:   rec.RequirementNumber,
		PositionTitle:       rec.PositionTitle,
		DepartmentID:        rec.DepartmentID,
		JobLevelID:          rec.JobLevelID,
		LocationID:          rec.LocationID,
		RequirementType:     rec.RequirementType,
		EmploymentType:      rec.EmploymentType,
		WorkMode:            rec.WorkMode,
		NumberOfPositions:   rec.NumberOfPositions,
		Priority:            rec.Priority,
		JobDescription:      rec.JobDescription,
		KeyResponsibilities: rec.KeyResponsibilities,
		RequiredSkills:      rec.RequiredSkills,
		Justification:       rec.Justification,
		MinSalary:           rec.MinSalary,
		MaxSalary:           rec.MaxSalary,
		Currency:            rec.Currency,
		Status:              rec.Status,
		CreatedBy:           rec.CreatedBy,
		HiringManagerID:     rec.HiringManagerID,
		IsPosted:            rec.IsPosted,
		PostingStatus:       rec.PostingStatus,
		CreatedAt:           rec.CreatedAt,
		SubmittedAt:         rec.SubmittedAt,
		ApprovedAt:          rec.ApprovedAt,
		AssignedAt:          rec.AssignedAt,
		PostedAt:            rec.PostedAt,
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.JobLevel != nil {
		view.JobLevelName = rec.JobLevel.Name
	}
	if rec.Location != nil {
		view.LocationName = rec.Location.Name
	}
	if rec.HiringManager != nil {
		view.HiringManagerName = rec.HiringManager.GetFullName()
	}
	if rec.AssignedRecruiterID != nil {
		view.AssignedRecruiterID = *rec.AssignedRecruiterID
	}
	return view
}
