package approvalhandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	approvalstore "hiring-hare-backend/lib/approval/store"
	requirementstore "hiring-hare-backend/lib/requirement/store"
	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
)

type Provider interface {
	// History returns the full approval ledger of a requirement, oldest first.
	History(requirementID string) ([]reqapimodels.ApprovalView, error)
	// Inbox returns the caller's unresolved approval tasks, newest first.
	Inbox(approverID string) ([]reqapimodels.PendingApprovalView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		store:            approvalstore.NewInstance(database),
		requirementStore: requirementstore.NewInstance(database),
	}
}

type impl struct {
	store            approvalstore.Provider
	requirementStore requirementstore.Provider
}

func (i impl) History(requirementID string) ([]reqapimodels.ApprovalView, error) {
	rec, err := i.requirementStore.GetByID(requirementID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "requirement not found")
	}
	list, err := i.store.ListForRequirement(requirementID)
	if err != nil {
		return nil, err
	}
	views := make([]reqapimodels.ApprovalView, 0, len(list))
	for _, item := range list {
		views = append(views, reqapimodels.ApprovalConvert(item))
	}
	return views, nil
}

func (i impl) Inbox(approverID string) ([]reqapimodels.PendingApprovalView, error) {
	list, err := i.store.ListPendingForApprover(approverID)
	if err != nil {
		return nil, err
	}
	views := make([]reqapimodels.PendingApprovalView, 0, len(list))
	for _, item := range list {
		views = append(views, reqapimodels.PendingApprovalConvert(item))
	}
	return views, nil
}
