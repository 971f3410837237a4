package dictsstore

import (
	"gorm.io/gorm"

	dbmodels "hiring-hare-backend/models/db"
)

// Provider covers the three reference dictionaries. They share the
// create/list shape and have no lifecycle of their own.
type Provider interface {
	CreateDepartment(rec dbmodels.Department) (id string, err error)
	ListDepartments() (list []dbmodels.Department, err error)
	CreateJobLevel(rec dbmodels.JobLevel) (id string, err error)
	ListJobLevels() (list []dbmodels.JobLevel, err error)
	CreateLocation(rec dbmodels.Location) (id string, err error)
	ListLocations() (list []dbmodels.Location, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateDepartment(rec dbmodels.Department) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListDepartments() (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	err = i.db.Order("name ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateJobLevel(rec dbmodels.JobLevel) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListJobLevels() (list []dbmodels.JobLevel, err error) {
	list = []dbmodels.JobLevel{}
	err = i.db.Order("grade ASC, name ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateLocation(rec dbmodels.Location) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListLocations() (list []dbmodels.Location, err error) {
	list = []dbmodels.Location{}
	err = i.db.Order("name ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
