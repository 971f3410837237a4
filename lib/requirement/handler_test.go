package requirementhandler_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	approvalhandler "hiring-hare-backend/lib/approval"
	"hiring-hare-backend/lib/notify"
	"hiring-hare-backend/lib/rbac"
	requirementhandler "hiring-hare-backend/lib/requirement"
	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
	dbmodels "hiring-hare-backend/models/db"
)

type fixture struct {
	db        *gorm.DB
	handler   requirementhandler.Provider
	manager   *dbmodels.User
	approver  *dbmodels.User
	recruiter *dbmodels.User
	viewer    *dbmodels.User
	dict      struct {
		departmentID string
		jobLevelID   string
		locationID   string
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&dbmodels.Permission{},
		&dbmodels.Role{},
		&dbmodels.User{},
		&dbmodels.Department{},
		&dbmodels.JobLevel{},
		&dbmodels.Location{},
		&dbmodels.Requirement{},
		&dbmodels.Approval{},
		&dbmodels.Candidate{},
	))

	catalog, err := rbac.NewCatalog(models.PermissionCatalog(), models.RoleGrants())
	require.NoError(t, err)

	notify.NewHandler()

	f := &fixture{
		db:      database,
		handler: requirementhandler.NewProvider(database, rbac.NewGuard(catalog), notify.Instance),
	}

	roles := map[string]*dbmodels.Role{}
	for _, name := range []string{models.RoleHiringManager, models.RoleApprover, models.RoleRecruiter, models.RoleViewer} {
		role := &dbmodels.Role{Name: name}
		require.NoError(t, database.Create(role).Error)
		roles[name] = role
	}

	f.manager = f.createUser(t, "manager@example.com", roles[models.RoleHiringManager])
	f.approver = f.createUser(t, "approver@example.com", roles[models.RoleApprover])
	f.recruiter = f.createUser(t, "recruiter@example.com", roles[models.RoleRecruiter])
	f.viewer = f.createUser(t, "viewer@example.com", roles[models.RoleViewer])

	department := dbmodels.Department{Name: "Engineering"}
	require.NoError(t, database.Create(&department).Error)
	jobLevel := dbmodels.JobLevel{Name: "Senior", Grade: 3}
	require.NoError(t, database.Create(&jobLevel).Error)
	location := dbmodels.Location{Name: "Rotterdam"}
	require.NoError(t, database.Create(&location).Error)
	f.dict.departmentID = department.ID
	f.dict.jobLevelID = jobLevel.ID
	f.dict.locationID = location.ID
	return f
}

func (f *fixture) createUser(t *testing.T, email string, roles ...*dbmodels.Role) *dbmodels.User {
	t.Helper()
	user := &dbmodels.User{
		Email:    email,
		IsActive: true,
	}
	for _, role := range roles {
		user.Roles = append(user.Roles, *role)
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) requirementData() reqapimodels.RequirementData {
	return reqapimodels.RequirementData{
		PositionTitle:          "Backend Engineer",
		DepartmentID:           f.dict.departmentID,
		JobLevelID:             f.dict.jobLevelID,
		LocationID:             f.dict.locationID,
		RequirementType:        models.ReqTypeNew,
		EmploymentType:         models.EmploymentFullTime,
		WorkMode:               models.WorkModeHybrid,
		NumberOfPositions:      2,
		Priority:               models.PriorityHigh,
		JobDescription:         "Builds and runs backend services",
		RequiredQualifications: "5 years of production experience",
		Justification:          "Team is understaffed for the roadmap",
	}
}

func (f *fixture) role(t *testing.T, name string) *dbmodels.Role {
	t.Helper()
	var role dbmodels.Role
	require.NoError(t, f.db.Where("name = ?", name).First(&role).Error)
	return &role
}

func (f *fixture) addPendingApproval(t *testing.T, requirementID string, approver *dbmodels.User) dbmodels.Approval {
	t.Helper()
	task := dbmodels.Approval{
		RequirementID: requirementID,
		ApproverID:    approver.ID,
		Stage:         models.StageDepartmentHead,
		Status:        models.ApprovalPending,
		SubmittedAt:   time.Now(),
	}
	require.NoError(t, f.db.Create(&task).Error)
	return task
}

func (f *fixture) loadApproval(t *testing.T, id string) dbmodels.Approval {
	t.Helper()
	var task dbmodels.Approval
	require.NoError(t, f.db.Where("id = ?", id).First(&task).Error)
	return task
}

func (f *fixture) loadRequirement(t *testing.T, id string) dbmodels.Requirement {
	t.Helper()
	var rec dbmodels.Requirement
	require.NoError(t, f.db.Where("id = ?", id).First(&rec).Error)
	return rec
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	f := newFixture(t)

	firstID, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	secondID, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	first := f.loadRequirement(t, firstID)
	second := f.loadRequirement(t, secondID)
	assert.Equal(t, "REQ-00001", first.RequirementNumber)
	assert.Equal(t, "REQ-00002", second.RequirementNumber)
	assert.Equal(t, models.ReqStatusDraft, first.Status)
	assert.Equal(t, f.manager.ID, first.HiringManagerID)
	assert.Nil(t, first.SubmittedAt)
}

func TestSubmitCreatesPendingApproval(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusSubmitted, rec.Status)
	assert.NotNil(t, rec.SubmittedAt)

	var approvals []dbmodels.Approval
	require.NoError(t, f.db.Where("requirement_id = ?", id).Find(&approvals).Error)
	require.Len(t, approvals, 1)
	assert.Equal(t, f.approver.ID, approvals[0].ApproverID)
	assert.Equal(t, models.ApprovalPending, approvals[0].Status)
	assert.Equal(t, models.StageDepartmentHead, approvals[0].Stage)
}

func TestSubmitTwiceFails(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	err = f.handler.Submit(f.manager, id)
	assert.True(t, models.IsInvalidTransition(err))
}

func TestSubmitByStrangerDenied(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	err = f.handler.Submit(f.viewer, id)
	assert.True(t, errors.Is(err, models.ErrAuthorizationDenied))
}

func TestSubmitByFellowHiringManager(t *testing.T) {
	f := newFixture(t)
	colleague := f.createUser(t, "colleague@example.com", f.role(t, models.RoleHiringManager))

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	// anyone holding the hiring manager role may manage, not just the owner
	require.NoError(t, f.handler.Submit(colleague, id))
	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusSubmitted, rec.Status)
}

func TestApproveFullLifecycle(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	require.NoError(t, f.handler.Approve(f.approver, id, reqapimodels.ResolveData{Comments: "looks good"}))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusApproved, rec.Status)
	assert.NotNil(t, rec.ApprovedAt)

	require.NoError(t, f.handler.AssignRecruiter(f.manager, id, f.recruiter.ID))
	rec = f.loadRequirement(t, id)
	require.NotNil(t, rec.AssignedRecruiterID)
	assert.Equal(t, f.recruiter.ID, *rec.AssignedRecruiterID)
	assert.NotNil(t, rec.AssignedAt)

	require.NoError(t, f.handler.Activate(f.recruiter, id))
	rec = f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusActive, rec.Status)
}

func TestApproveWithoutPendingTaskDenied(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	err = f.handler.Approve(f.viewer, id, reqapimodels.ResolveData{})
	assert.True(t, errors.Is(err, models.ErrAuthorizationDenied))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusSubmitted, rec.Status)
}

func TestApproveDraftFails(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	err = f.handler.Approve(f.approver, id, reqapimodels.ResolveData{})
	assert.True(t, models.IsInvalidTransition(err))
}

func TestApproveWaitsForLastPending(t *testing.T) {
	f := newFixture(t)
	second := f.createUser(t, "approver2@example.com", f.role(t, models.RoleApprover))

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	sibling := f.addPendingApproval(t, id, second)

	require.NoError(t, f.handler.Approve(f.approver, id, reqapimodels.ResolveData{Comments: "fine by me"}))

	// one of two resolved, the requirement holds its position
	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusSubmitted, rec.Status)
	assert.Nil(t, rec.ApprovedAt)
	assert.Equal(t, models.ApprovalPending, f.loadApproval(t, sibling.ID).Status)

	require.NoError(t, f.handler.Approve(second, id, reqapimodels.ResolveData{}))
	rec = f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusApproved, rec.Status)
	assert.NotNil(t, rec.ApprovedAt)
}

func TestRejectLeavesSiblingPending(t *testing.T) {
	f := newFixture(t)
	second := f.createUser(t, "approver2@example.com", f.role(t, models.RoleApprover))

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	sibling := f.addPendingApproval(t, id, second)

	require.NoError(t, f.handler.Reject(f.approver, id, reqapimodels.RejectData{Comments: "headcount freeze this quarter"}))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusRejected, rec.Status)
	assert.Equal(t, models.ApprovalPending, f.loadApproval(t, sibling.ID).Status)

	// the dangling task is inert, resolving it cannot move a terminal
	// requirement
	err = f.handler.Approve(second, id, reqapimodels.ResolveData{})
	assert.True(t, models.IsInvalidTransition(err))
	rec = f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusRejected, rec.Status)
	assert.Nil(t, rec.ApprovedAt)
	assert.Equal(t, models.ApprovalPending, f.loadApproval(t, sibling.ID).Status)
}

func TestConflictingResolutionsSingleWinner(t *testing.T) {
	// The row lock serializes conflicting resolutions. Whichever lands
	// second sees an already terminal requirement.
	f := newFixture(t)
	second := f.createUser(t, "approver2@example.com", f.role(t, models.RoleApprover))

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	f.addPendingApproval(t, id, second)

	require.NoError(t, f.handler.Reject(f.approver, id, reqapimodels.RejectData{Comments: "role re-scoped, repost later"}))
	err = f.handler.Reject(second, id, reqapimodels.RejectData{Comments: "duplicate of another opening"})
	assert.True(t, models.IsInvalidTransition(err))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusRejected, rec.Status)

	var resolved int64
	require.NoError(t, f.db.Model(&dbmodels.Approval{}).
		Where("requirement_id = ? AND status <> ?", id, models.ApprovalPending).
		Count(&resolved).Error)
	assert.EqualValues(t, 1, resolved)
}

func TestRejectRequiresComment(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	err = f.handler.Reject(f.approver, id, reqapimodels.RejectData{Comments: "too short"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	// nothing moved
	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusSubmitted, rec.Status)
	var task dbmodels.Approval
	require.NoError(t, f.db.Where("requirement_id = ?", id).First(&task).Error)
	assert.Equal(t, models.ApprovalPending, task.Status)
}

func TestRejectIsTerminal(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	require.NoError(t, f.handler.Reject(f.approver, id, reqapimodels.RejectData{Comments: "budget was cut for this quarter"}))

	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusRejected, rec.Status)

	var task dbmodels.Approval
	require.NoError(t, f.db.Where("requirement_id = ?", id).First(&task).Error)
	assert.Equal(t, models.ApprovalRejected, task.Status)
	assert.Equal(t, "budget was cut for this quarter", task.Comments)
	assert.NotNil(t, task.ReviewedAt)

	// no way back
	err = f.handler.Approve(f.approver, id, reqapimodels.ResolveData{})
	assert.True(t, models.IsInvalidTransition(err))
	err = f.handler.Submit(f.manager, id)
	assert.True(t, models.IsInvalidTransition(err))
}

func TestAssignRecruiterChecks(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	// not approved yet
	err = f.handler.AssignRecruiter(f.manager, id, f.recruiter.ID)
	assert.True(t, models.IsInvalidTransition(err))

	require.NoError(t, f.handler.Submit(f.manager, id))
	require.NoError(t, f.handler.Approve(f.approver, id, reqapimodels.ResolveData{}))

	// unknown recruiter
	err = f.handler.AssignRecruiter(f.manager, id, "no-such-user")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestActivateOnlyByAssignedRecruiter(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	require.NoError(t, f.handler.Approve(f.approver, id, reqapimodels.ResolveData{}))

	// no recruiter assigned yet
	err = f.handler.Activate(f.recruiter, id)
	assert.True(t, models.IsInvalidTransition(err))

	require.NoError(t, f.handler.AssignRecruiter(f.manager, id, f.recruiter.ID))

	err = f.handler.Activate(f.manager, id)
	assert.True(t, errors.Is(err, models.ErrAuthorizationDenied))

	require.NoError(t, f.handler.Activate(f.recruiter, id))
}

func TestDeleteRules(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))
	require.NoError(t, f.handler.Reject(f.approver, id, reqapimodels.RejectData{Comments: "position is no longer needed"}))

	// terminal records stay
	err = f.handler.Delete(f.manager, id)
	assert.True(t, models.IsInvalidTransition(err))

	id, err = f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Delete(f.manager, id))

	_, err = f.handler.GetByID(id)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestUpdateDraftOnly(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	data := f.requirementData()
	data.PositionTitle = "Staff Engineer"
	require.NoError(t, f.handler.Update(f.manager, id, data))
	rec := f.loadRequirement(t, id)
	assert.Equal(t, "Staff Engineer", rec.PositionTitle)

	require.NoError(t, f.handler.Submit(f.manager, id))
	err = f.handler.Update(f.manager, id, data)
	assert.True(t, models.IsInvalidTransition(err))
}

func TestNoApproverConfigured(t *testing.T) {
	f := newFixture(t)

	// deactivate the only approver
	require.NoError(t, f.db.Model(&dbmodels.User{}).
		Where("id = ?", f.approver.ID).
		Update("is_active", false).Error)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)

	err = f.handler.Submit(f.manager, id)
	assert.True(t, errors.Is(err, models.ErrNoApproverConfigured))

	// still a draft, nothing was committed
	rec := f.loadRequirement(t, id)
	assert.Equal(t, models.ReqStatusDraft, rec.Status)
}

func TestSubmitFallsBackToSuperuser(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.db.Model(&dbmodels.User{}).
		Where("id = ?", f.approver.ID).
		Update("is_active", false).Error)
	root := &dbmodels.User{Email: "root@example.com", IsActive: true, IsSuperuser: true}
	require.NoError(t, f.db.Create(root).Error)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	var task dbmodels.Approval
	require.NoError(t, f.db.Where("requirement_id = ?", id).First(&task).Error)
	assert.Equal(t, root.ID, task.ApproverID)
}

func TestApprovalLedgerViews(t *testing.T) {
	f := newFixture(t)

	id, err := f.handler.Create(f.manager, f.requirementData())
	require.NoError(t, err)
	require.NoError(t, f.handler.Submit(f.manager, id))

	ledger := approvalhandler.NewProvider(f.db)

	inbox, err := ledger.Inbox(f.approver.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	rec := f.loadRequirement(t, id)
	assert.Equal(t, rec.RequirementNumber, inbox[0].RequirementNumber)
	assert.Equal(t, f.manager.ID, inbox[0].SubmitterID)

	require.NoError(t, f.handler.Approve(f.approver, id, reqapimodels.ResolveData{Comments: "go ahead"}))

	inbox, err = ledger.Inbox(f.approver.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	history, err := ledger.History(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ApprovalApproved, history[0].Status)
	assert.Equal(t, "go ahead", history[0].Comments)

	_, err = ledger.History("missing-id")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
