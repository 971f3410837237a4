package reqapimodels

import (
	"time"

	"hiring-hare-backend/models"
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

// JobFilter is bound from careers page query parameters.
type JobFilter struct {
	apimodels.Pagination
	Department     string                `json:"department" query:"department"`
	Location       string                `json:"location" query:"location"`
	EmploymentType models.EmploymentType `json:"employment_type" query:"employment_type"`
	WorkMode       models.WorkMode       `json:"work_mode" query:"work_mode"`
}

// JobView is the public careers page shape, internal workflow fields are
// not exposed.
type JobView struct {
	ID                     string                `json:"id"`
	RequirementNumber      string                `json:"requirement_number"`
	PositionTitle          string                `json:"position_title"`
	DepartmentName         string                `json:"department_name,omitempty"`
	LocationName           string                `json:"location_name,omitempty"`
	EmploymentType         models.EmploymentType `json:"employment_type"`
	WorkMode               models.WorkMode       `json:"work_mode"`
	JobDescription         string                `json:"job_description"`
	RequiredQualifications string                `json:"required_qualifications"`
	RequiredSkills         string                `json:"required_skills,omitempty"`
	MinSalary              float64               `json:"min_salary,omitempty"`
	MaxSalary              float64               `json:"max_salary,omitempty"`
	Currency               string                `json:"currency,omitempty"`
	PostedAt               *time.Time            `json:"posted_at,omitempty"`
}

func JobConvert(rec dbmodels.Requirement) JobView {
	view := JobView{
		ID:                     rec.ID,
		RequirementNumber:      rec.RequirementNumber,
		PositionTitle:          rec.PositionTitle,
		EmploymentType:         rec.EmploymentType,
		WorkMode:               rec.WorkMode,
		JobDescription:         rec.JobDescription,
		RequiredQualifications: rec.RequiredQualifications,
		RequiredSkills:         rec.RequiredSkills,
		MinSalary:              rec.MinSalary,
		MaxSalary:              rec.MaxSalary,
		Currency:               rec.Currency,
		PostedAt:               rec.PostedAt,
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.Location != nil {
		view.LocationName = rec.Location.Name
	}
	return view
}
