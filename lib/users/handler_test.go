package usershandler_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	usershandler "hiring-hare-backend/lib/users"
	"hiring-hare-backend/models"
	usersapimodels "hiring-hare-backend/models/api/users"
	dbmodels "hiring-hare-backend/models/db"
)

func newTestHandler(t *testing.T) (usershandler.Provider, *gorm.DB) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&dbmodels.Permission{},
		&dbmodels.Role{},
		&dbmodels.User{},
	))
	for _, name := range []string{models.RoleHiringManager, models.RoleRecruiter, models.RoleViewer} {
		require.NoError(t, database.Create(&dbmodels.Role{Name: name}).Error)
	}
	return usershandler.NewProvider(database), database
}

func userData(email string, roles ...string) usersapimodels.UserCreateData {
	return usersapimodels.UserCreateData{
		Email:     email,
		Password:  "s3cret-pass",
		FirstName: "Jane",
		LastName:  "Doe",
		Roles:     roles,
	}
}

func TestCreateUserWithRoles(t *testing.T) {
	handler, _ := newTestHandler(t)

	id, err := handler.Create(userData("Jane@Example.com", models.RoleHiringManager))
	require.NoError(t, err)

	view, err := handler.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", view.Email)
	assert.True(t, view.IsActive)
	assert.Equal(t, []string{models.RoleHiringManager}, view.Roles)
}

func TestCreateDuplicateEmail(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.Create(userData("jane@example.com"))
	require.NoError(t, err)

	_, err = handler.Create(userData("JANE@example.com"))
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestCreateUnknownRole(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.Create(userData("jane@example.com", "astronaut"))
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestAssignRolesReplacesSet(t *testing.T) {
	handler, _ := newTestHandler(t)

	id, err := handler.Create(userData("jane@example.com", models.RoleViewer))
	require.NoError(t, err)

	require.NoError(t, handler.AssignRoles(id, usersapimodels.RoleAssignData{
		Roles: []string{models.RoleRecruiter},
	}))
	view, err := handler.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleRecruiter}, view.Roles)

	err = handler.AssignRoles("missing-id", usersapimodels.RoleAssignData{Roles: []string{models.RoleViewer}})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestSetActive(t *testing.T) {
	handler, _ := newTestHandler(t)

	id, err := handler.Create(userData("jane@example.com"))
	require.NoError(t, err)

	require.NoError(t, handler.SetActive(id, false))
	view, err := handler.GetByID(id)
	require.NoError(t, err)
	assert.False(t, view.IsActive)

	require.NoError(t, handler.SetActive(id, true))
	view, err = handler.GetByID(id)
	require.NoError(t, err)
	assert.True(t, view.IsActive)
}

func TestListFilterByRole(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.Create(userData("jane@example.com", models.RoleRecruiter))
	require.NoError(t, err)
	_, err = handler.Create(userData("john@example.com", models.RoleViewer))
	require.NoError(t, err)

	list, rowCount, err := handler.List(usersapimodels.UserFilter{Role: models.RoleRecruiter})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "jane@example.com", list[0].Email)

	list, rowCount, err = handler.List(usersapimodels.UserFilter{Search: "john"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, "john@example.com", list[0].Email)
}
