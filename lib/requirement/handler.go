package requirementhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	approvalstore "hiring-hare-backend/lib/approval/store"
	"hiring-hare-backend/lib/notify"
	"hiring-hare-backend/lib/rbac"
	requirementstore "hiring-hare-backend/lib/requirement/store"
	usersstore "hiring-hare-backend/lib/users/store"
	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(actor *dbmodels.User, data reqapimodels.RequirementData) (string, error)
	GetByID(id string) (reqapimodels.RequirementView, error)
	Update(actor *dbmodels.User, id string, data reqapimodels.RequirementData) error
	Delete(actor *dbmodels.User, id string) error
	List(filter reqapimodels.RequirementFilter) ([]reqapimodels.RequirementView, int64, error)

	// Lifecycle transitions. Each runs in one transaction holding a row
	// lock on the requirement, so concurrent callers serialize and at
	// most one terminal transition wins.
	Submit(actor *dbmodels.User, id string) error
	Approve(actor *dbmodels.User, id string, data reqapimodels.ResolveData) error
	Reject(actor *dbmodels.User, id string, data reqapimodels.RejectData) error
	AssignRecruiter(actor *dbmodels.User, id string, recruiterID string) error
	Activate(actor *dbmodels.User, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB, rbac.Instance.Guard(), notify.Instance)
}

func NewProvider(database *gorm.DB, guard *rbac.Guard, notifier notify.Provider) Provider {
	return impl{
		db:       database,
		guard:    guard,
		notifier: notifier,
	}
}

type impl struct {
	db       *gorm.DB
	guard    *rbac.Guard
	notifier notify.Provider
}

func (i impl) Create(actor *dbmodels.User, data reqapimodels.RequirementData) (string, error) {
	var id string
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		seq, err := store.NextSeqNo()
		if err != nil {
			return errors.Wrap(err, "reserve requirement number")
		}
		rec := dbmodels.Requirement{
			SeqNo:                   seq,
			RequirementNumber:       models.RequirementNumberFormat(seq),
			PositionTitle:           data.PositionTitle,
			DepartmentID:            data.DepartmentID,
			JobLevelID:              data.JobLevelID,
			LocationID:              data.LocationID,
			RequirementType:         data.RequirementType,
			EmploymentType:          data.EmploymentType,
			WorkMode:                data.WorkMode,
			NumberOfPositions:       data.NumberOfPositions,
			Priority:                data.Priority,
			JobDescription:          data.JobDescription,
			KeyResponsibilities:     data.KeyResponsibilities,
			RequiredQualifications:  data.RequiredQualifications,
			PreferredQualifications: data.PreferredQualifications,
			RequiredSkills:          data.RequiredSkills,
			Justification:           data.Justification,
			MinSalary:               data.MinSalary,
			MaxSalary:               data.MaxSalary,
			Currency:                data.Currency,
			Status:                  models.ReqStatusDraft,
			CreatedBy:               actor.ID,
			HiringManagerID:         actor.ID,
		}
		id, err = store.Create(rec)
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (i impl) GetByID(id string) (reqapimodels.RequirementView, error) {
	rec, err := requirementstore.NewInstance(i.db).GetByID(id)
	if err != nil {
		return reqapimodels.RequirementView{}, err
	}
	if rec == nil {
		return reqapimodels.RequirementView{}, errors.Wrap(models.ErrNotFound, "requirement not found")
	}
	return reqapimodels.RequirementConvert(*rec), nil
}

func (i impl) Update(actor *dbmodels.User, id string, data reqapimodels.RequirementData) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if rec.Status != models.ReqStatusDraft {
			return models.NewInvalidTransition("update", rec.Status)
		}
		if !i.canManage(actor, rec) {
			return errors.Wrap(models.ErrAuthorizationDenied, "not allowed to manage this requirement")
		}
		return store.Update(id, map[string]interface{}{
			"position_title":           data.PositionTitle,
			"department_id":            data.DepartmentID,
			"job_level_id":             data.JobLevelID,
			"location_id":              data.LocationID,
			"requirement_type":         data.RequirementType,
			"employment_type":          data.EmploymentType,
			"work_mode":                data.WorkMode,
			"number_of_positions":      data.NumberOfPositions,
			"priority":                 data.Priority,
			"job_description":          data.JobDescription,
			"key_responsibilities":     data.KeyResponsibilities,
			"required_qualifications":  data.RequiredQualifications,
			"preferred_qualifications": data.PreferredQualifications,
			"required_skills":          data.RequiredSkills,
			"justification":            data.Justification,
			"min_salary":               data.MinSalary,
			"max_salary":               data.MaxSalary,
			"currency":                 data.Currency,
		})
	})
}

func (i impl) Delete(actor *dbmodels.User, id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if rec.Status.IsTerminal() {
			return models.NewInvalidTransition("delete", rec.Status)
		}
		if !i.canManage(actor, rec) {
			return errors.Wrap(models.ErrAuthorizationDenied, "not allowed to manage this requirement")
		}
		return store.Delete(id)
	})
}

func (i impl) List(filter reqapimodels.RequirementFilter) ([]reqapimodels.RequirementView, int64, error) {
	store := requirementstore.NewInstance(i.db)
	list, err := store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]reqapimodels.RequirementView, 0, len(list))
	for _, rec := range list {
		views = append(views, reqapimodels.RequirementConvert(rec))
	}
	return views, count, nil
}

func (i impl) Submit(actor *dbmodels.User, id string) error {
	var submitted dbmodels.Requirement
	var approver dbmodels.User
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.Status.AllowSubmit() {
			return models.NewInvalidTransition("submit", rec.Status)
		}
		if !i.canManage(actor, rec) {
			return errors.Wrap(models.ErrAuthorizationDenied, "not allowed to manage this requirement")
		}

		picked, err := i.pickApprover(usersstore.NewInstance(tx))
		if err != nil {
			return err
		}

		now := time.Now()
		_, err = approvalstore.NewInstance(tx).Create(dbmodels.Approval{
			RequirementID: rec.ID,
			ApproverID:    picked.ID,
			Stage:         models.StageDepartmentHead,
			Status:        models.ApprovalPending,
			SubmittedAt:   now,
		})
		if err != nil {
			return errors.Wrap(err, "create approval task")
		}

		err = store.Update(id, map[string]interface{}{
			"status":       models.ReqStatusSubmitted,
			"submitted_at": now,
		})
		if err != nil {
			return err
		}
		submitted = *rec
		approver = *picked
		return nil
	})
	if err != nil {
		return err
	}
	i.notifier.RequirementSubmitted(submitted, approver)
	return nil
}

func (i impl) Approve(actor *dbmodels.User, id string, data reqapimodels.ResolveData) error {
	var approved *dbmodels.Requirement
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.Status.AllowResolve() {
			return models.NewInvalidTransition("approve", rec.Status)
		}

		approvals := approvalstore.NewInstance(tx)
		task, err := approvals.GetPendingForApprover(rec.ID, actor.ID)
		if err != nil {
			return err
		}
		if task == nil {
			return errors.Wrap(models.ErrAuthorizationDenied, "no pending approval task for this user")
		}

		now := time.Now()
		err = approvals.Update(task.ID, map[string]interface{}{
			"status":      models.ApprovalApproved,
			"comments":    data.Comments,
			"reviewed_at": now,
		})
		if err != nil {
			return err
		}

		// The requirement only advances when the whole chain is resolved
		// in its favor, re-counted inside the lock.
		unresolved, err := approvals.CountUnresolved(rec.ID)
		if err != nil {
			return err
		}
		if unresolved > 0 {
			return nil
		}
		err = store.Update(id, map[string]interface{}{
			"status":      models.ReqStatusApproved,
			"approved_at": now,
		})
		if err != nil {
			return err
		}
		approved = rec
		return nil
	})
	if err != nil {
		return err
	}
	if approved != nil {
		i.notifier.RequirementApproved(*approved)
	}
	return nil
}

func (i impl) Reject(actor *dbmodels.User, id string, data reqapimodels.RejectData) error {
	if len(data.Comments) < models.RejectCommentMinLen {
		return errors.Wrapf(models.ErrValidation,
			"rejection comment must be at least %d characters", models.RejectCommentMinLen)
	}
	var rejected dbmodels.Requirement
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.Status.AllowResolve() {
			return models.NewInvalidTransition("reject", rec.Status)
		}

		approvals := approvalstore.NewInstance(tx)
		task, err := approvals.GetPendingForApprover(rec.ID, actor.ID)
		if err != nil {
			return err
		}
		if task == nil {
			return errors.Wrap(models.ErrAuthorizationDenied, "no pending approval task for this user")
		}

		now := time.Now()
		err = approvals.Update(task.ID, map[string]interface{}{
			"status":      models.ApprovalRejected,
			"comments":    data.Comments,
			"reviewed_at": now,
		})
		if err != nil {
			return err
		}
		// A single rejection is decisive, sibling tasks stay untouched.
		err = store.Update(id, map[string]interface{}{
			"status": models.ReqStatusRejected,
		})
		if err != nil {
			return err
		}
		rejected = *rec
		return nil
	})
	if err != nil {
		return err
	}
	i.notifier.RequirementRejected(rejected, data.Comments)
	return nil
}

func (i impl) AssignRecruiter(actor *dbmodels.User, id string, recruiterID string) error {
	var assigned dbmodels.Requirement
	var recruiter dbmodels.User
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.Status.AllowAssign() {
			return models.NewInvalidTransition("assign a recruiter to", rec.Status)
		}
		if !i.canManage(actor, rec) {
			return errors.Wrap(models.ErrAuthorizationDenied, "not allowed to manage this requirement")
		}

		picked, err := usersstore.NewInstance(tx).GetByID(recruiterID)
		if err != nil {
			return err
		}
		if picked == nil || !picked.IsActive {
			return errors.Wrap(models.ErrNotFound, "recruiter not found")
		}

		err = store.Update(id, map[string]interface{}{
			"assigned_recruiter_id": picked.ID,
			"assigned_at":           time.Now(),
		})
		if err != nil {
			return err
		}
		assigned = *rec
		recruiter = *picked
		return nil
	})
	if err != nil {
		return err
	}
	i.notifier.RecruiterAssigned(assigned, recruiter)
	return nil
}

func (i impl) Activate(actor *dbmodels.User, id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.Status.AllowActivate() {
			return models.NewInvalidTransition("activate", rec.Status)
		}
		if rec.AssignedRecruiterID == nil {
			return models.NewInvalidTransition("activate an unassigned", rec.Status)
		}
		if !actor.Superuser() && *rec.AssignedRecruiterID != actor.ID {
			return errors.Wrap(models.ErrAuthorizationDenied, "only the assigned recruiter may activate")
		}
		return store.Update(id, map[string]interface{}{
			"status": models.ReqStatusActive,
		})
	})
}

// canManage allows the requirement's owner, anyone holding the hiring
// manager or admin role, and superusers.
func (i impl) canManage(actor *dbmodels.User, rec *dbmodels.Requirement) bool {
	if actor == nil {
		return false
	}
	if actor.ID == rec.HiringManagerID {
		return true
	}
	return i.guard.HasAnyRole(actor, models.RoleHiringManager, models.RoleAdmin)
}

// pickApprover selects the chain head: the oldest active admin or approver,
// falling back to an active superuser when none holds those roles.
func (i impl) pickApprover(store usersstore.Provider) (*dbmodels.User, error) {
	picked, err := store.FindFirstActiveWithRoles([]string{models.RoleAdmin, models.RoleApprover})
	if err != nil {
		return nil, err
	}
	if picked == nil {
		picked, err = store.FindFirstActiveSuperuser()
		if err != nil {
			return nil, err
		}
	}
	if picked == nil {
		log.Error("no active approver or superuser available")
		return nil, models.ErrNoApproverConfigured
	}
	return picked, nil
}
