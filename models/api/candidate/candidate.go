package candidateapimodels

import (
	"time"

	"hiring-hare-backend/models"
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

type CandidateData struct {
	RequirementID string `json:"requirement_id" validate:"required"`
	FirstName     string `json:"first_name" validate:"required,max=150"`
	LastName      string `json:"last_name" validate:"required,max=150"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number"`
	ResumeURL     string `json:"resume_url"`
	Source        string `json:"source"`
	Notes         string `json:"notes"`
}

func (r CandidateData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type CandidateUpdateData struct {
	CandidateData
	Status models.CandidateStatus `json:"status"`
}

type CandidateFilter struct {
	apimodels.Pagination
	RequirementID string                 `json:"requirement_id"`
	Status        models.CandidateStatus `json:"status"`
	Search        string                 `json:"search"` // name or email
}

type CandidateView struct {
	ID            string                 `json:"id"`
	RequirementID string                 `json:"requirement_id"`
	FirstName     string                 `json:"first_name"`
	LastName      string                 `json:"last_name"`
	Email         string                 `json:"email"`
	PhoneNumber   string                 `json:"phone_number,omitempty"`
	ResumeURL     string                 `json:"resume_url,omitempty"`
	Source        string                 `json:"source,omitempty"`
	Status        models.CandidateStatus `json:"status"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID:            rec.ID,
		RequirementID: rec.RequirementID,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		Email:         rec.Email,
		PhoneNumber:   rec.PhoneNumber,
		ResumeURL:     rec.ResumeURL,
		Source:        rec.Source,
		Status:        rec.Status,
		Notes:         rec.Notes,
		CreatedAt:     rec.CreatedAt,
	}
}
