package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hiring-hare-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Permission{}); err != nil {
		return errors.Wrap(err, "migration failed for Permission")
	}
	if err := DB.AutoMigrate(&dbmodels.Role{}); err != nil {
		return errors.Wrap(err, "migration failed for Role")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration failed for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "migration failed for Department")
	}
	if err := DB.AutoMigrate(&dbmodels.JobLevel{}); err != nil {
		return errors.Wrap(err, "migration failed for JobLevel")
	}
	if err := DB.AutoMigrate(&dbmodels.Location{}); err != nil {
		return errors.Wrap(err, "migration failed for Location")
	}
	if err := DB.AutoMigrate(&dbmodels.Requirement{}); err != nil {
		return errors.Wrap(err, "migration failed for Requirement")
	}
	if err := DB.AutoMigrate(&dbmodels.Approval{}); err != nil {
		return errors.Wrap(err, "migration failed for Approval")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "migration failed for Candidate")
	}
	log.Info("migrations finished")
	return nil
}
