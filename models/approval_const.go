package models

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

type ApprovalStage string

// Single stage chain for now, the column allows adding stages
// (FINANCE, HR_HEAD, ...) without schema changes.
const (
	StageDepartmentHead ApprovalStage = "DEPARTMENT_HEAD"
)

// RejectCommentMinLen is the minimal length of the mandatory rejection comment.
const RejectCommentMinLen = 10
