package candidatehandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	candidatestore "hiring-hare-backend/lib/candidate/store"
	requirementstore "hiring-hare-backend/lib/requirement/store"
	"hiring-hare-backend/models"
	candidateapimodels "hiring-hare-backend/models/api/candidate"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(actorID string, data candidateapimodels.CandidateData) (string, error)
	GetByID(id string) (candidateapimodels.CandidateView, error)
	Update(id string, data candidateapimodels.CandidateUpdateData) error
	Delete(id string) error
	List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		store:            candidatestore.NewInstance(database),
		requirementStore: requirementstore.NewInstance(database),
	}
}

type impl struct {
	store            candidatestore.Provider
	requirementStore requirementstore.Provider
}

func (i impl) Create(actorID string, data candidateapimodels.CandidateData) (string, error) {
	rec, err := i.requirementStore.GetByID(data.RequirementID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.Wrap(models.ErrNotFound, "requirement not found")
	}
	// Candidates attach to requirements that are actually being worked.
	if rec.Status != models.ReqStatusApproved && rec.Status != models.ReqStatusActive {
		return "", models.NewInvalidTransition("add a candidate to", rec.Status)
	}
	return i.store.Create(dbmodels.Candidate{
		RequirementID: data.RequirementID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Email:         data.Email,
		PhoneNumber:   data.PhoneNumber,
		ResumeURL:     data.ResumeURL,
		Source:        data.Source,
		Notes:         data.Notes,
		Status:        models.CandidateNew,
		CreatedBy:     actorID,
	})
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.Wrap(models.ErrNotFound, "candidate not found")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateUpdateData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "candidate not found")
	}
	updMap := map[string]interface{}{
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"email":        data.Email,
		"phone_number": data.PhoneNumber,
		"resume_url":   data.ResumeURL,
		"source":       data.Source,
		"notes":        data.Notes,
	}
	if data.Status != "" {
		updMap["status"] = data.Status
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "candidate not found")
	}
	return i.store.Delete(id)
}

func (i impl) List(filter candidateapimodels.CandidateFilter) ([]candidateapimodels.CandidateView, int64, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]candidateapimodels.CandidateView, 0, len(list))
	for _, rec := range list {
		views = append(views, candidateapimodels.CandidateConvert(rec))
	}
	return views, count, nil
}
