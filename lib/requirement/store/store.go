package requirementstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Requirement) (id string, err error)
	// NextSeqNo reserves the next sequential number. Call it inside the
	// same transaction as Create, the unique index on seq_no rejects the
	// loser of a concurrent race.
	NextSeqNo() (int64, error)
	GetByID(id string) (rec *dbmodels.Requirement, err error)
	// GetByIDLocked reads the row with a FOR UPDATE lock. Only meaningful
	// on a transaction-bound store.
	GetByIDLocked(id string) (rec *dbmodels.Requirement, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter reqapimodels.RequirementFilter) (list []dbmodels.Requirement, err error)
	ListCount(filter reqapimodels.RequirementFilter) (int64, error)
	ListPostings(filter reqapimodels.PostingFilter) (list []dbmodels.Requirement, err error)
	ListPostingsCount(filter reqapimodels.PostingFilter) (int64, error)
	// ListJobs returns live postings only, for the unauthenticated careers
	// page.
	ListJobs(filter reqapimodels.JobFilter) (list []dbmodels.Requirement, err error)
	ListJobsCount(filter reqapimodels.JobFilter) (int64, error)
	GetPostedByNumber(number string) (rec *dbmodels.Requirement, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Requirement) (id string, err error) {
	err = i.db.
		Omit("Department", "JobLevel", "Location", "HiringManager", "AssignedRecruiter", "Approvals").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) NextSeqNo() (int64, error) {
	var max int64
	err := i.db.
		Model(&dbmodels.Requirement{}).
		Unscoped().
		Select("COALESCE(MAX(seq_no), 0)").
		Scan(&max).
		Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Requirement, err error) {
	err = i.db.
		Where("id = ?", id).
		Preload("Department").
		Preload("JobLevel").
		Preload("Location").
		Preload("HiringManager").
		Preload("AssignedRecruiter").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByIDLocked(id string) (rec *dbmodels.Requirement, err error) {
	query := i.db
	// sqlite has no row locks, the whole file locks on write
	if query.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err = query.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Requirement{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Requirement{}).
		Error
}

func (i impl) listQuery(filter reqapimodels.RequirementFilter) *gorm.DB {
	query := i.db.Model(&dbmodels.Requirement{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("position_title LIKE ? OR requirement_number LIKE ?", pattern, pattern)
	}
	return query
}

func (i impl) List(filter reqapimodels.RequirementFilter) (list []dbmodels.Requirement, err error) {
	list = []dbmodels.Requirement{}
	page, limit := filter.GetPage()
	err = i.listQuery(filter).
		Preload("Department").
		Preload("JobLevel").
		Preload("Location").
		Preload("HiringManager").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter reqapimodels.RequirementFilter) (count int64, err error) {
	err = i.listQuery(filter).
		Count(&count).
		Error
	return count, err
}

func (i impl) postingQuery(filter reqapimodels.PostingFilter) *gorm.DB {
	query := i.db.
		Model(&dbmodels.Requirement{}).
		Where("is_posted = ?", true)
	if filter.PostingStatus != "" {
		query = query.Where("posting_status = ?", filter.PostingStatus)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("position_title LIKE ? OR requirement_number LIKE ?", pattern, pattern)
	}
	return query
}

func (i impl) ListPostings(filter reqapimodels.PostingFilter) (list []dbmodels.Requirement, err error) {
	list = []dbmodels.Requirement{}
	page, limit := filter.GetPage()
	err = i.postingQuery(filter).
		Preload("Department").
		Preload("JobLevel").
		Preload("Location").
		Order("posted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPostingsCount(filter reqapimodels.PostingFilter) (count int64, err error) {
	err = i.postingQuery(filter).
		Count(&count).
		Error
	return count, err
}

func (i impl) jobsQuery(filter reqapimodels.JobFilter) *gorm.DB {
	query := i.db.
		Model(&dbmodels.Requirement{}).
		Where("requirements.is_posted = ?", true).
		Where("requirements.posting_status = ?", models.PostingActive).
		Where("requirements.status IN ?", []models.RequirementStatus{
			models.ReqStatusApproved,
			models.ReqStatusActive,
		})
	if filter.Department != "" {
		query = query.
			Joins("JOIN departments ON departments.id = requirements.department_id").
			Where("departments.name = ?", filter.Department)
	}
	if filter.Location != "" {
		query = query.
			Joins("JOIN locations ON locations.id = requirements.location_id").
			Where("locations.name = ?", filter.Location)
	}
	if filter.EmploymentType != "" {
		query = query.Where("requirements.employment_type = ?", filter.EmploymentType)
	}
	if filter.WorkMode != "" {
		query = query.Where("requirements.work_mode = ?", filter.WorkMode)
	}
	return query
}

func (i impl) ListJobs(filter reqapimodels.JobFilter) (list []dbmodels.Requirement, err error) {
	list = []dbmodels.Requirement{}
	page, limit := filter.GetPage()
	err = i.jobsQuery(filter).
		Preload("Department").
		Preload("Location").
		Order("requirements.posted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListJobsCount(filter reqapimodels.JobFilter) (count int64, err error) {
	err = i.jobsQuery(filter).
		Count(&count).
		Error
	return count, err
}

func (i impl) GetPostedByNumber(number string) (rec *dbmodels.Requirement, err error) {
	err = i.db.
		Where("requirement_number = ?", number).
		Where("is_posted = ?", true).
		Where("posting_status = ?", models.PostingActive).
		Preload("Department").
		Preload("Location").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}
