package reqapimodels

import (
	"time"

	"hiring-hare-backend/models"
	dbmodels "hiring-hare-backend/models/db"
)

type ApprovalView struct {
	ID            string                `json:"id"`
	RequirementID string                `json:"requirement_id"`
	ApproverID    string                `json:"approver_id"`
	ApproverName  string                `json:"approver_name,omitempty"`
	Stage         models.ApprovalStage  `json:"stage"`
	Status        models.ApprovalStatus `json:"status"`
	Comments      string                `json:"comments,omitempty"`
	SubmittedAt   time.Time             `json:"submitted_at"`
	ReviewedAt    *time.Time            `json:"reviewed_at,omitempty"`
}

// PendingApprovalView carries enough requirement context to render the
// approver inbox without a second round trip.
type PendingApprovalView struct {
	ApprovalView
	RequirementNumber string `json:"requirement_number"`
	PositionTitle     string `json:"position_title"`
	SubmitterID       string `json:"submitter_id"`
	SubmitterName     string `json:"submitter_name,omitempty"`
}

func ApprovalConvert(rec dbmodels.Approval) ApprovalView {
	view := ApprovalView{
		ID:            rec.ID,
		RequirementID: rec.RequirementID,
		ApproverID:    rec.ApproverID,
		Stage:         rec.Stage,
		Status:        rec.Status,
		Comments:      rec.Comments,
		SubmittedAt:   rec.SubmittedAt,
		ReviewedAt:    rec.ReviewedAt,
	}
	if rec.Approver != nil {
		view.ApproverName = rec.Approver.GetFullName()
	}
	return view
}

func PendingApprovalConvert(rec dbmodels.Approval) PendingApprovalView {
	view := PendingApprovalView{
		ApprovalView: ApprovalConvert(rec),
	}
	if rec.Requirement != nil {
		view.RequirementNumber = rec.Requirement.RequirementNumber
		view.PositionTitle = rec.Requirement.PositionTitle
		view.SubmitterID = rec.Requirement.HiringManagerID
		if rec.Requirement.HiringManager != nil {
			view.SubmitterName = rec.Requirement.HiringManager.GetFullName()
		}
	}
	return view
}
