package db

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hiring-hare-backend/config"
	"hiring-hare-backend/lib/rbac"
	authutils "hiring-hare-backend/lib/utils/auth-utils"
	"hiring-hare-backend/models"
	dbmodels "hiring-hare-backend/models/db"
)

// PreloadDB seeds the permission catalog, the built-in roles with their
// expanded grants and the initial superuser. It is idempotent and runs on
// every start after migration.
func PreloadDB() error {
	catalog, err := rbac.NewCatalog(models.PermissionCatalog(), models.RoleGrants())
	if err != nil {
		// A broken seed grant is a deployment defect, not a request error.
		return errors.Wrap(err, "role grant catalog")
	}

	if err := preloadPermissions(); err != nil {
		return errors.Wrap(err, "preload permissions")
	}
	if err := preloadRoles(catalog); err != nil {
		return errors.Wrap(err, "preload roles")
	}
	if err := preloadSuperuser(); err != nil {
		return errors.Wrap(err, "preload superuser")
	}
	return nil
}

func preloadPermissions() error {
	for _, name := range models.PermissionCatalog() {
		resource, action, found := strings.Cut(name, ".")
		if !found {
			return errors.Errorf("malformed permission name %q", name)
		}
		var rec dbmodels.Permission
		err := DB.Where("name = ?", name).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = DB.Create(&dbmodels.Permission{
				Name:     name,
				Resource: resource,
				Action:   action,
			}).Error
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func preloadRoles(catalog *rbac.Catalog) error {
	for _, grant := range models.RoleGrants() {
		expanded := catalog.RolePermissions(grant.Name)

		var role dbmodels.Role
		err := DB.Where("name = ?", grant.Name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			role = dbmodels.Role{
				Name:         grant.Name,
				DisplayName:  grant.DisplayName,
				Description:  grant.Description,
				IsSystemRole: true,
			}
			err = DB.Create(&role).Error
		}
		if err != nil {
			return err
		}

		var perms []dbmodels.Permission
		if err := DB.Where("name IN ?", expanded).Find(&perms).Error; err != nil {
			return err
		}
		if err := DB.Model(&role).Association("Permissions").Replace(perms); err != nil {
			return err
		}
	}
	return nil
}

func preloadSuperuser() error {
	email := strings.ToLower(config.Conf.Admin.Email)
	if email == "" {
		log.Warn("no admin email configured, skipping superuser seed")
		return nil
	}
	var existing dbmodels.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		return err
	}
	rec := dbmodels.User{
		Email:       email,
		Password:    hash,
		FirstName:   "System",
		LastName:    "Administrator",
		IsActive:    true,
		IsSuperuser: true,
	}
	if err := DB.Create(&rec).Error; err != nil {
		return err
	}
	log.WithField("email", email).Info("superuser created")
	return nil
}
