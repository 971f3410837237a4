package usershandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-hare-backend/db"
	usersstore "hiring-hare-backend/lib/users/store"
	authutils "hiring-hare-backend/lib/utils/auth-utils"
	"hiring-hare-backend/models"
	usersapimodels "hiring-hare-backend/models/api/users"
	dbmodels "hiring-hare-backend/models/db"
)

type Provider interface {
	Create(data usersapimodels.UserCreateData) (id string, err error)
	GetByID(id string) (usersapimodels.UserView, error)
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error)
	AssignRoles(id string, data usersapimodels.RoleAssignData) error
	SetActive(id string, isActive bool) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(db.DB)
}

func NewProvider(database *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(database),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Create(data usersapimodels.UserCreateData) (id string, err error) {
	logger := log.WithField("email", data.Email)
	existed, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return "", err
	}
	if existed != nil {
		return "", errors.Wrap(models.ErrValidation, "user with this email already exists")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", err
	}
	roles, err := i.resolveRoles(data.Roles)
	if err != nil {
		return "", err
	}
	rec := dbmodels.User{
		Email:       strings.ToLower(data.Email),
		Password:    hash,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		IsActive:    true,
		Roles:       roles,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user creation failed")
		return "", err
	}
	logger.WithField("rec_id", id).Info("user created")
	return id, nil
}

func (i impl) GetByID(id string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) AssignRoles(id string, data usersapimodels.RoleAssignData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "user not found")
	}
	roles, err := i.resolveRoles(data.Roles)
	if err != nil {
		return err
	}
	err = i.store.ReplaceRoles(id, roles)
	if err != nil {
		logger.WithError(err).Error("role assignment failed")
		return err
	}
	logger.WithField("roles", data.Roles).Info("user roles updated")
	return nil
}

func (i impl) SetActive(id string, isActive bool) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "user not found")
	}
	return i.store.Update(id, map[string]interface{}{"is_active": isActive})
}

func (i impl) resolveRoles(names []string) ([]dbmodels.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles, err := i.store.FindRolesByNames(names)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, errors.Wrapf(models.ErrValidation, "unknown role in %v", names)
	}
	return roles, nil
}
