package usersstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	usersapimodels "hiring-hare-backend/models/api/users"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(userID string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	Update(userID string, updMap map[string]interface{}) error
	List(filter usersapimodels.UserFilter) (list []dbmodels.User, err error)
	ListCount(filter usersapimodels.UserFilter) (int64, error)
	// FindFirstActiveWithRoles picks the oldest active user holding any of
	// the named roles. Ordering by (created_at, id) keeps the pick
	// deterministic under creation-time ties.
	FindFirstActiveWithRoles(roleNames []string) (rec *dbmodels.User, err error)
	FindFirstActiveSuperuser() (rec *dbmodels.User, err error)
	FindRolesByNames(names []string) (list []dbmodels.Role, err error)
	ReplaceRoles(userID string, roles []dbmodels.Role) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		Preload("Roles.Permissions").
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

func (i impl) FindByEmail(email string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("email = ?", strings.ToLower(email)).
		Preload("Roles.Permissions").
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
}

func (i impl) listQuery(filter usersapimodels.UserFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.User{})
	if filter.Role != "" {
		tx = tx.
			Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_id").
			Where("roles.name = ?", filter.Role)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}
	return tx
}

func (i impl) List(filter usersapimodels.UserFilter) (list []dbmodels.User, err error) {
	page, limit := filter.GetPage()
	list = []dbmodels.User{}
	err = i.listQuery(filter).
		Preload("Roles").
		Order("users.created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter usersapimodels.UserFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	return count, err
}

func (i impl) FindFirstActiveWithRoles(roleNames []string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name IN ?", roleNames).
		Where("users.is_active = ?", true).
		Order("users.created_at ASC, users.id ASC").
		Preload("Roles").
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

func (i impl) FindFirstActiveSuperuser() (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("is_superuser = ?", true).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
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

func (i impl) FindRolesByNames(names []string) (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.
		Where("name IN ?", names).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ReplaceRoles(userID string, roles []dbmodels.Role) error {
	user := dbmodels.User{BaseModel: dbmodels.BaseModel{ID: userID}}
	return i.db.Model(&user).Association("Roles").Replace(roles)
}
