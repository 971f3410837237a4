package notify

import (
	log "github.com/sirupsen/logrus"

	dbmodels "hiring-hare-backend/models/db"
)

// Provider is the notification fan-out contract. The default
// implementation only logs; mail or messenger delivery plugs in here.
type Provider interface {
	RequirementSubmitted(rec dbmodels.Requirement, approver dbmodels.User)
	RequirementApproved(rec dbmodels.Requirement)
	RequirementRejected(rec dbmodels.Requirement, comments string)
	RecruiterAssigned(rec dbmodels.Requirement, recruiter dbmodels.User)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) RequirementSubmitted(rec dbmodels.Requirement, approver dbmodels.User) {
	log.WithField("requirement", rec.RequirementNumber).
		WithField("approver", approver.Email).
		Info("requirement submitted for approval")
}

func (i impl) RequirementApproved(rec dbmodels.Requirement) {
	log.WithField("requirement", rec.RequirementNumber).
		Info("requirement approved")
}

func (i impl) RequirementRejected(rec dbmodels.Requirement, comments string) {
	log.WithField("requirement", rec.RequirementNumber).
		WithField("comments", comments).
		Info("requirement rejected")
}

func (i impl) RecruiterAssigned(rec dbmodels.Requirement, recruiter dbmodels.User) {
	log.WithField("requirement", rec.RequirementNumber).
		WithField("recruiter", recruiter.Email).
		Info("recruiter assigned")
}
