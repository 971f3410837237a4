package usersapimodels

import (
	apimodels "hiring-hare-backend/models/api"
	dbmodels "hiring-hare-backend/models/db"
)

type UserCreateData struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"first_name" validate:"required,max=150"`
	LastName    string   `json:"last_name" validate:"required,max=150"`
	PhoneNumber string   `json:"phone_number"`
	Roles       []string `json:"roles"`
}

func (r UserCreateData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RoleAssignData struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}

func (r RoleAssignData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type UserFilter struct {
	apimodels.Pagination
	Role   string `json:"role"`
	Search string `json:"search"` // name or email
}

type UserView struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	IsActive    bool     `json:"is_active"`
	IsSuperuser bool     `json:"is_superuser"`
	Roles       []string `json:"roles"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		PhoneNumber: rec.PhoneNumber,
		IsActive:    rec.IsActive,
		IsSuperuser: rec.IsSuperuser,
		Roles:       rec.RoleNames(),
	}
}
