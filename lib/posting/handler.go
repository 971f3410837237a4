package postinghandler

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	requirementstore "hiring-hare-backend/lib/requirement/store"
	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
)

type Provider interface {
	// Publish marks an approved or active requirement as a live job posting.
	Publish(requirementID string) (reqapimodels.RequirementView, error)
	SetStatus(requirementID string, data reqapimodels.PostingStatusData) error
	List(filter reqapimodels.PostingFilter) ([]reqapimodels.RequirementView, int64, error)

	// Careers page surface, serves anonymous visitors. Only live postings
	// of approved or active requirements are visible.
	Jobs(filter reqapimodels.JobFilter) ([]reqapimodels.JobView, int64, error)
	JobBySlug(slug string) (reqapimodels.JobView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		db: database,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Publish(requirementID string) (reqapimodels.RequirementView, error) {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(requirementID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if rec.Status != models.ReqStatusApproved && rec.Status != models.ReqStatusActive {
			return models.NewInvalidTransition("publish", rec.Status)
		}
		if rec.IsPosted {
			return errors.Wrap(models.ErrValidation, "requirement is already posted")
		}
		return store.Update(requirementID, map[string]interface{}{
			"is_posted":      true,
			"posting_status": models.PostingActive,
			"posted_at":      time.Now(),
		})
	})
	if err != nil {
		return reqapimodels.RequirementView{}, err
	}
	rec, err := requirementstore.NewInstance(i.db).GetByID(requirementID)
	if err != nil {
		return reqapimodels.RequirementView{}, err
	}
	return reqapimodels.RequirementConvert(*rec), nil
}

func (i impl) SetStatus(requirementID string, data reqapimodels.PostingStatusData) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		store := requirementstore.NewInstance(tx)
		rec, err := store.GetByIDLocked(requirementID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrap(models.ErrNotFound, "requirement not found")
		}
		if !rec.IsPosted {
			return errors.Wrap(models.ErrValidation, "requirement is not posted")
		}
		return store.Update(requirementID, map[string]interface{}{
			"posting_status": data.Status,
		})
	})
}

func (i impl) Jobs(filter reqapimodels.JobFilter) ([]reqapimodels.JobView, int64, error) {
	store := requirementstore.NewInstance(i.db)
	list, err := store.ListJobs(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := store.ListJobsCount(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]reqapimodels.JobView, 0, len(list))
	for _, rec := range list {
		views = append(views, reqapimodels.JobConvert(rec))
	}
	return views, count, nil
}

// JobBySlug resolves a careers page slug, usually the requirement number
// in any casing with or without the REQ- prefix.
func (i impl) JobBySlug(slug string) (reqapimodels.JobView, error) {
	number := strings.ToUpper(slug)
	if !strings.HasPrefix(number, "REQ-") {
		number = "REQ-" + number
	}
	rec, err := requirementstore.NewInstance(i.db).GetPostedByNumber(number)
	if err != nil {
		return reqapimodels.JobView{}, err
	}
	if rec == nil {
		return reqapimodels.JobView{}, errors.Wrap(models.ErrNotFound, "job posting not found")
	}
	return reqapimodels.JobConvert(*rec), nil
}

func (i impl) List(filter reqapimodels.PostingFilter) ([]reqapimodels.RequirementView, int64, error) {
	store := requirementstore.NewInstance(i.db)
	list, err := store.ListPostings(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := store.ListPostingsCount(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]reqapimodels.RequirementView, 0, len(list))
	for _, rec := range list {
		views = append(views, reqapimodels.RequirementConvert(rec))
	}
	return views, count, nil
}
