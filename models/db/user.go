package dbmodels

import (
	"fmt"
)

type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	IsActive    bool
	IsSuperuser bool
	Roles       []Role `gorm:"many2many:user_roles"`
}

type Role struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);uniqueIndex"`
	DisplayName  string `gorm:"type:varchar(150)"`
	Description  string
	IsSystemRole bool
	Permissions  []Permission `gorm:"many2many:role_permissions"`
}

type Permission struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex"`
	Resource    string `gorm:"type:varchar(50);index"`
	Action      string `gorm:"type:varchar(50)"`
	Description string
}

func (u User) GetFullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// RoleNames makes User satisfy the rbac.Actor capability interface.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

func (u User) Superuser() bool {
	return u.IsSuperuser
}
