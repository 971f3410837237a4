package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hiring-hare-backend/models"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Approval) (id string, err error)
	// GetPendingForApprover returns the single PENDING row of
	// (requirement, approver), nil when none exists.
	GetPendingForApprover(requirementID, approverID string) (rec *dbmodels.Approval, err error)
	Update(id string, updMap map[string]interface{}) error
	ListForRequirement(requirementID string) (list []dbmodels.Approval, err error)
	ListPendingForApprover(approverID string) (list []dbmodels.Approval, err error)
	CountUnresolved(requirementID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approval) (id string, err error) {
	err = i.db.
		Omit("Approver", "Requirement").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetPendingForApprover(requirementID, approverID string) (rec *dbmodels.Approval, err error) {
	err = i.db.
		Where("requirement_id = ?", requirementID).
		Where("approver_id = ?", approverID).
		Where("status = ?", models.ApprovalPending).
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
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListForRequirement(requirementID string) (list []dbmodels.Approval, err error) {
	list = []dbmodels.Approval{}
	err = i.db.
		Where("requirement_id = ?", requirementID).
		Order("submitted_at ASC").
		Preload("Approver").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPendingForApprover(approverID string) (list []dbmodels.Approval, err error) {
	list = []dbmodels.Approval{}
	err = i.db.
		Where("approver_id = ?", approverID).
		Where("status = ?", models.ApprovalPending).
		Order("submitted_at DESC").
		Preload("Requirement").
		Preload("Requirement.HiringManager").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountUnresolved(requirementID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Approval{}).
		Where("requirement_id = ?", requirementID).
		Where("status <> ?", models.ApprovalApproved).
		Count(&count).
		Error
	return count, err
}
