package dictapimodels

import (
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

type DepartmentData struct {
	Name        string `json:"name" validate:"required,max=150"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (r DepartmentData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DepartmentView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:          rec.ID,
		Name:        rec.Name,
		Code:        rec.Code,
		Description: rec.Description,
	}
}

type JobLevelData struct {
	Name  string `json:"name" validate:"required,max=150"`
	Code  string `json:"code"`
	Grade int    `json:"grade"`
}

func (r JobLevelData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type JobLevelView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Grade int    `json:"grade,omitempty"`
}

func JobLevelConvert(rec dbmodels.JobLevel) JobLevelView {
	return JobLevelView{
		ID:    rec.ID,
		Name:  rec.Name,
		Code:  rec.Code,
		Grade: rec.Grade,
	}
}

type LocationData struct {
	Name    string `json:"name" validate:"required,max=150"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (r LocationData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type LocationView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

func LocationConvert(rec dbmodels.Location) LocationView {
	return LocationView{
		ID:      rec.ID,
		Name:    rec.Name,
		City:    rec.City,
		Country: rec.Country,
	}
}
