package dictshandler

import (
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	dictsstore "hiring-hare-backend/lib/dicts/store"
	dictapimodels "hiring-hare-backend/models/api/dict"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	CreateDepartment(data dictapimodels.DepartmentData) (string, error)
	ListDepartments() ([]dictapimodels.DepartmentView, error)
	CreateJobLevel(data dictapimodels.JobLevelData) (string, error)
	ListJobLevels() ([]dictapimodels.JobLevelView, error)
	CreateLocation(data dictapimodels.LocationData) (string, error)
	ListLocations() ([]dictapimodels.LocationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		store: dictsstore.NewInstance(database),
	}
}

type impl struct {
	store dictsstore.Provider
}

func (i impl) CreateDepartment(data dictapimodels.DepartmentData) (string, error) {
	return i.store.CreateDepartment(dbmodels.Department{
		Name:        data.Name,
		Code:        data.Code,
		Description: data.Description,
	})
}

func (i impl) ListDepartments() ([]dictapimodels.DepartmentView, error) {
	list, err := i.store.ListDepartments()
	if err != nil {
		return nil, err
	}
	views := make([]dictapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		views = append(views, dictapimodels.DepartmentConvert(rec))
	}
	return views, nil
}

func (i impl) CreateJobLevel(data dictapimodels.JobLevelData) (string, error) {
	return i.store.CreateJobLevel(dbmodels.JobLevel{
		Name:  data.Name,
		Code:  data.Code,
		Grade: data.Grade,
	})
}

func (i impl) ListJobLevels() ([]dictapimodels.JobLevelView, error) {
	list, err := i.store.ListJobLevels()
	if err != nil {
		return nil, err
	}
	views := make([]dictapimodels.JobLevelView, 0, len(list))
	for _, rec := range list {
		views = append(views, dictapimodels.JobLevelConvert(rec))
	}
	return views, nil
}

func (i impl) CreateLocation(data dictapimodels.LocationData) (string, error) {
	return i.store.CreateLocation(dbmodels.Location{
		Name:    data.Name,
		City:    data.City,
		Country: data.Country,
	})
}

func (i impl) ListLocations() ([]dictapimodels.LocationView, error) {
	list, err := i.store.ListLocations()
	if err != nil {
		return nil, err
	}
	views := make([]dictapimodels.LocationView, 0, len(list))
	for _, rec := range list {
		views = append(views, dictapimodels.LocationConvert(rec))
	}
	return views, nil
}
