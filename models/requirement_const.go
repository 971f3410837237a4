package models

import "fmt"

type RequirementStatus string

const (
	ReqStatusDraft     RequirementStatus = "DRAFT"
	ReqStatusSubmitted RequirementStatus = "SUBMITTED"
	ReqStatusApproved  RequirementStatus = "APPROVED"
	ReqStatusRejected  RequirementStatus = "REJECTED"
	ReqStatusActive    RequirementStatus = "ACTIVE"
)

// RequirementNumberFormat renders the human readable sequential number (REQ-00001).
func RequirementNumberFormat(seq int64) string {
	return fmt.Sprintf("REQ-%05d", seq)
}

func (s RequirementStatus) AllowSubmit() bool {
	return s == ReqStatusDraft
}

func (s RequirementStatus) AllowResolve() bool {
	return s == ReqStatusSubmitted
}

func (s RequirementStatus) AllowAssign() bool {
	return s == ReqStatusApproved
}

func (s RequirementStatus) AllowActivate() bool {
	return s == ReqStatusApproved
}

// IsTerminal reports whether no further lifecycle transitions exist.
// ACTIVE is operationally terminal, closure flows are not modeled.
func (s RequirementStatus) IsTerminal() bool {
	return s == ReqStatusRejected || s == ReqStatusActive
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
	EmploymentContract EmploymentType = "CONTRACT"
	EmploymentIntern   EmploymentType = "INTERN"
)

type WorkMode string

const (
	WorkModeOnsite WorkMode = "ONSITE"
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeHybrid WorkMode = "HYBRID"
)

type RequirementType string

const (
	ReqTypeNew         RequirementType = "NEW_POSITION"
	ReqTypeReplacement RequirementType = "REPLACEMENT"
	ReqTypeExpansion   RequirementType = "EXPANSION"
)

type PostingStatus string

const (
	PostingActive PostingStatus = "ACTIVE"
	PostingPaused PostingStatus = "PAUSED"
	PostingClosed PostingStatus = "CLOSED"
)

type CandidateStatus string

const (
	CandidateNew         CandidateStatus = "NEW"
	CandidateScreening   CandidateStatus = "SCREENING"
	CandidateInterview   CandidateStatus = "INTERVIEW"
	CandidateOffered     CandidateStatus = "OFFERED"
	CandidateHired       CandidateStatus = "HIRED"
	CandidateNotSelected CandidateStatus = "NOT_SELECTED"
)
