package rbac

import (
	"hiring-hare-backend/models"
)

// Route table: method+path to required catalog permission. Identity rules
// (pending-approval ownership, assigned-recruiter activation) are enforced in
// the handlers, not here.
func (i *impl) initRules() {
	i.requirementRules()
	i.approvalRules()
	i.postingRules()
	i.candidateRules()
	i.userRules()
	i.dictRules()
}

func (i *impl) requirementRules() {
	i.registerRule(models.PermRequirementRead, "/api/v1/requirement/list [post]")
	i.registerRule(models.PermRequirementRead, "/api/v1/requirement/{id} [get]")
	i.registerRule(models.PermRequirementCreate, "/api/v1/requirement [post]")
	i.registerRule(models.PermRequirementUpdate, "/api/v1/requirement/{id} [put]")
	i.registerRule(models.PermRequirementDelete, "/api/v1/requirement/{id} [delete]")
	i.registerRule(models.PermRequirementCreate, "/api/v1/requirement/{id}/submit [post]")
	i.registerRule(models.PermRequirementApprove, "/api/v1/requirement/{id}/approve [post]")
	i.registerRule(models.PermRequirementApprove, "/api/v1/requirement/{id}/reject [post]")
	i.registerRule(models.PermRequirementAssign, "/api/v1/requirement/{id}/assign-recruiter/{recruiterId} [post]")
	// activation is gated by assigned-recruiter identity in the handler,
	// requirement.read keeps it off-limits to anonymous-role users only
	i.registerRule(models.PermRequirementRead, "/api/v1/requirement/{id}/activate [post]")
}

func (i *impl) approvalRules() {
	i.registerRule(models.PermRequirementRead, "/api/v1/requirement/{id}/approvals [get]")
	i.registerRule(models.PermRequirementRead, "/api/v1/approvals/pending [get]")
}

func (i *impl) postingRules() {
	i.registerRule(models.PermJobPostingPublish, "/api/v1/requirement/{id}/publish [post]")
	i.registerRule(models.PermJobPostingUpdate, "/api/v1/requirement/{id}/posting_status [put]")
	i.registerRule(models.PermJobPostingRead, "/api/v1/postings/list [post]")
}

func (i *impl) candidateRules() {
	i.registerRule(models.PermCandidateRead, "/api/v1/candidate/list [post]")
	i.registerRule(models.PermCandidateRead, "/api/v1/candidate/{id} [get]")
	i.registerRule(models.PermCandidateCreate, "/api/v1/candidate [post]")
	i.registerRule(models.PermCandidateUpdate, "/api/v1/candidate/{id} [put]")
	i.registerRule(models.PermCandidateDelete, "/api/v1/candidate/{id} [delete]")
}

func (i *impl) userRules() {
	i.registerRule(models.PermUserRead, "/api/v1/users/list [post]")
	i.registerRule(models.PermUserRead, "/api/v1/users/{id} [get]")
	i.registerRule(models.PermUserCreate, "/api/v1/users [post]")
	i.registerRule(models.PermUserAssignRole, "/api/v1/users/{id}/roles [put]")
	i.registerRule(models.PermUserUpdate, "/api/v1/users/{id}/activate [put]")
	i.registerRule(models.PermUserUpdate, "/api/v1/users/{id}/deactivate [put]")
}

func (i *impl) dictRules() {
	i.registerRule(models.PermDictRead, "/api/v1/dict/departments [get]")
	i.registerRule(models.PermDictManage, "/api/v1/dict/departments [post]")
	i.registerRule(models.PermDictRead, "/api/v1/dict/job_levels [get]")
	i.registerRule(models.PermDictManage, "/api/v1/dict/job_levels [post]")
	i.registerRule(models.PermDictRead, "/api/v1/dict/locations [get]")
	i.registerRule(models.PermDictManage, "/api/v1/dict/locations [post]")
}
