package postinghandler_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	postinghandler "hiring-hare-backend/lib/posting"
	"hiring-hare-backend/models"
	reqapimodels "hiring-hare-backend/models/api/requirement"
	dbmodels "hiring-hare-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&dbmodels.User{},
		&dbmodels.Department{},
		&dbmodels.JobLevel{},
		&dbmodels.Location{},
		&dbmodels.Requirement{},
		&dbmodels.Approval{},
	))
	return database
}

func createRequirement(t *testing.T, database *gorm.DB, seq int64, status models.RequirementStatus) dbmodels.Requirement {
	t.Helper()
	rec := dbmodels.Requirement{
		SeqNo:             seq,
		RequirementNumber: models.RequirementNumberFormat(seq),
		PositionTitle:     "Backend Engineer",
		Status:            status,
	}
	require.NoError(t, database.Create(&rec).Error)
	return rec
}

func TestPublishApprovedRequirement(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)
	rec := createRequirement(t, database, 1, models.ReqStatusApproved)

	view, err := handler.Publish(rec.ID)
	require.NoError(t, err)
	assert.True(t, view.IsPosted)
	assert.Equal(t, models.PostingActive, view.PostingStatus)
	assert.NotNil(t, view.PostedAt)

	// publishing twice is rejected
	_, err = handler.Publish(rec.ID)
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func TestPublishDraftFails(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)
	rec := createRequirement(t, database, 1, models.ReqStatusDraft)

	_, err := handler.Publish(rec.ID)
	assert.True(t, models.IsInvalidTransition(err))
}

func TestSetStatusRequiresPublished(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)
	rec := createRequirement(t, database, 1, models.ReqStatusApproved)

	err := handler.SetStatus(rec.ID, reqapimodels.PostingStatusData{Status: models.PostingPaused})
	assert.True(t, errors.Is(err, models.ErrValidation))

	_, err = handler.Publish(rec.ID)
	require.NoError(t, err)
	require.NoError(t, handler.SetStatus(rec.ID, reqapimodels.PostingStatusData{Status: models.PostingPaused}))

	var stored dbmodels.Requirement
	require.NoError(t, database.Where("id = ?", rec.ID).First(&stored).Error)
	assert.Equal(t, models.PostingPaused, stored.PostingStatus)
}

func TestListPostingsFilters(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)

	active := createRequirement(t, database, 1, models.ReqStatusApproved)
	_, err := handler.Publish(active.ID)
	require.NoError(t, err)

	paused := createRequirement(t, database, 2, models.ReqStatusApproved)
	_, err = handler.Publish(paused.ID)
	require.NoError(t, err)
	require.NoError(t, handler.SetStatus(paused.ID, reqapimodels.PostingStatusData{Status: models.PostingPaused}))

	createRequirement(t, database, 3, models.ReqStatusApproved) // never published

	list, rowCount, err := handler.List(reqapimodels.PostingFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, rowCount)
	assert.Len(t, list, 2)

	list, rowCount, err = handler.List(reqapimodels.PostingFilter{PostingStatus: models.PostingPaused})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, list, 1)
	assert.Equal(t, paused.ID, list[0].ID)
}

func TestPublishMissingRequirement(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)

	_, err := handler.Publish("missing-id")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestPublicJobsOnlyLivePostings(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)

	live := createRequirement(t, database, 1, models.ReqStatusApproved)
	_, err := handler.Publish(live.ID)
	require.NoError(t, err)

	paused := createRequirement(t, database, 2, models.ReqStatusApproved)
	_, err = handler.Publish(paused.ID)
	require.NoError(t, err)
	require.NoError(t, handler.SetStatus(paused.ID, reqapimodels.PostingStatusData{Status: models.PostingPaused}))

	createRequirement(t, database, 3, models.ReqStatusApproved) // never published

	// a posted flag alone is not enough, the requirement must be approved
	// or active
	stray := dbmodels.Requirement{
		SeqNo:             4,
		RequirementNumber: models.RequirementNumberFormat(4),
		PositionTitle:     "Backend Engineer",
		Status:            models.ReqStatusSubmitted,
		IsPosted:          true,
		PostingStatus:     models.PostingActive,
	}
	require.NoError(t, database.Create(&stray).Error)

	jobs, rowCount, err := handler.Jobs(reqapimodels.JobFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, jobs, 1)
	assert.Equal(t, live.RequirementNumber, jobs[0].RequirementNumber)
}

func TestPublicJobsFilters(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)

	engineering := dbmodels.Department{Name: "Engineering"}
	require.NoError(t, database.Create(&engineering).Error)
	sales := dbmodels.Department{Name: "Sales"}
	require.NoError(t, database.Create(&sales).Error)

	backend := dbmodels.Requirement{
		SeqNo:             1,
		RequirementNumber: models.RequirementNumberFormat(1),
		PositionTitle:     "Backend Engineer",
		Status:            models.ReqStatusApproved,
		DepartmentID:      engineering.ID,
		WorkMode:          models.WorkModeRemote,
	}
	require.NoError(t, database.Create(&backend).Error)
	account := dbmodels.Requirement{
		SeqNo:             2,
		RequirementNumber: models.RequirementNumberFormat(2),
		PositionTitle:     "Account Manager",
		Status:            models.ReqStatusApproved,
		DepartmentID:      sales.ID,
		WorkMode:          models.WorkModeOnsite,
	}
	require.NoError(t, database.Create(&account).Error)
	for _, id := range []string{backend.ID, account.ID} {
		_, err := handler.Publish(id)
		require.NoError(t, err)
	}

	jobs, rowCount, err := handler.Jobs(reqapimodels.JobFilter{Department: "Engineering"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].PositionTitle)
	assert.Equal(t, "Engineering", jobs[0].DepartmentName)

	jobs, rowCount, err = handler.Jobs(reqapimodels.JobFilter{WorkMode: models.WorkModeOnsite})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rowCount)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Account Manager", jobs[0].PositionTitle)
}

func TestJobBySlug(t *testing.T) {
	database := newTestDB(t)
	handler := postinghandler.NewProvider(database)

	rec := createRequirement(t, database, 1, models.ReqStatusApproved)
	_, err := handler.Publish(rec.ID)
	require.NoError(t, err)

	// any casing, with or without the prefix
	for _, slug := range []string{"REQ-00001", "req-00001", "00001"} {
		job, err := handler.JobBySlug(slug)
		require.NoError(t, err)
		assert.Equal(t, "REQ-00001", job.RequirementNumber)
	}

	_, err = handler.JobBySlug("req-99999")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// a paused posting disappears from the careers page
	require.NoError(t, handler.SetStatus(rec.ID, reqapimodels.PostingStatusData{Status: models.PostingPaused}))
	_, err = handler.JobBySlug("req-00001")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
