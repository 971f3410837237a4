package models

// Role and permission names are administrative configuration, seeded at
// startup and never mutated through the workflow.

const (
	RoleSuperAdmin    = "super_admin"
	RoleAdmin         = "admin"
	RoleHiringManager = "hiring_manager"
	RoleApprover      = "approver"
	RoleRecruiter     = "recruiter"
	RoleInterviewer   = "interviewer"
	RoleViewer        = "viewer"
)

// Permission names use the resource.action form. Role grant lists may refer
// to them exactly, by resource wildcard (requirement.*) or the full wildcard (*).
const (
	PermRequirementCreate  = "requirement.create"
	PermRequirementRead    = "requirement.read"
	PermRequirementUpdate  = "requirement.update"
	PermRequirementDelete  = "requirement.delete"
	PermRequirementApprove = "requirement.approve"
	PermRequirementAssign  = "requirement.assign"

	PermCandidateCreate = "candidate.create"
	PermCandidateRead   = "candidate.read"
	PermCandidateUpdate = "candidate.update"
	PermCandidateDelete = "candidate.delete"

	PermJobPostingRead    = "job_posting.read"
	PermJobPostingUpdate  = "job_posting.update"
	PermJobPostingPublish = "job_posting.publish"

	PermUserCreate     = "user.create"
	PermUserRead       = "user.read"
	PermUserUpdate     = "user.update"
	PermUserAssignRole = "user.assign_role"

	PermDictRead   = "dict.read"
	PermDictManage = "dict.manage"
)

// RoleGrant is one seeded role with its raw permission patterns.
type RoleGrant struct {
	Name        string
	DisplayName string
	Description string
	Patterns    []string
}

func PermissionCatalog() []string {
	return []string{
		PermRequirementCreate, PermRequirementRead, PermRequirementUpdate,
		PermRequirementDelete, PermRequirementApprove, PermRequirementAssign,
		PermCandidateCreate, PermCandidateRead, PermCandidateUpdate, PermCandidateDelete,
		PermJobPostingRead, PermJobPostingUpdate, PermJobPostingPublish,
		PermUserCreate, PermUserRead, PermUserUpdate, PermUserAssignRole,
		PermDictRead, PermDictManage,
	}
}

func RoleGrants() []RoleGrant {
	return []RoleGrant{
		{
			Name:        RoleSuperAdmin,
			DisplayName: "Super Administrator",
			Description: "Full system access",
			Patterns:    []string{"*"},
		},
		{
			Name:        RoleAdmin,
			DisplayName: "Administrator",
			Description: "Manages users, reference data and the full requisition flow",
			Patterns:    []string{"requirement.*", "candidate.*", "job_posting.*", "user.*", "dict.*"},
		},
		{
			Name:        RoleHiringManager,
			DisplayName: "Hiring Manager",
			Description: "Creates and manages job requirements for their department",
			Patterns: []string{
				PermRequirementCreate, PermRequirementRead, PermRequirementUpdate,
				PermRequirementDelete, PermRequirementAssign,
				PermCandidateRead, PermJobPostingRead, PermDictRead,
			},
		},
		{
			Name:        RoleApprover,
			DisplayName: "Approver",
			Description: "Approves or rejects submitted job requirements",
			Patterns:    []string{PermRequirementRead, PermRequirementApprove, PermCandidateRead, PermDictRead},
		},
		{
			Name:        RoleRecruiter,
			DisplayName: "Recruiter",
			Description: "Runs sourcing for assigned requirements",
			Patterns: []string{
				PermRequirementRead, PermRequirementUpdate,
				"candidate.*", "job_posting.*", PermDictRead,
			},
		},
		{
			Name:        RoleInterviewer,
			DisplayName: "Interviewer",
			Description: "Views requirements and candidates for interviewing",
			Patterns:    []string{PermRequirementRead, PermCandidateRead, PermDictRead},
		},
		{
			Name:        RoleViewer,
			DisplayName: "Viewer",
			Description: "Read only access",
			Patterns:    []string{PermRequirementRead, PermCandidateRead, PermJobPostingRead, PermDictRead},
		},
	}
}
