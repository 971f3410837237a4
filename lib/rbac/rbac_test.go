package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-hare-backend/models"
)

type testActor struct {
	roles     []string
	superuser bool
}

func (a testActor) RoleNames() []string {
	return a.roles
}

func (a testActor) Superuser() bool {
	return a.superuser
}

func newTestCatalog(t *testing.T) *Catalog {
	catalog, err := NewCatalog(models.PermissionCatalog(), models.RoleGrants())
	require.NoError(t, err)
	return catalog
}

func TestExpandResourceWildcard(t *testing.T) {
	catalog := newTestCatalog(t)

	expanded, err := catalog.Expand([]string{"requirement.*"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		models.PermRequirementCreate,
		models.PermRequirementRead,
		models.PermRequirementUpdate,
		models.PermRequirementDelete,
		models.PermRequirementApprove,
		models.PermRequirementAssign,
	}, expanded)
}

func TestExpandFullWildcard(t *testing.T) {
	catalog := newTestCatalog(t)

	expanded, err := catalog.Expand([]string{"*"})
	require.NoError(t, err)
	assert.ElementsMatch(t, models.PermissionCatalog(), expanded)
}

func TestExpandDeduplicates(t *testing.T) {
	catalog := newTestCatalog(t)

	expanded, err := catalog.Expand([]string{"requirement.read", "requirement.*", "requirement.read"})
	require.NoError(t, err)
	assert.Len(t, expanded, 6)
}

func TestExpandUnknownPermission(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Expand([]string{"spaceship.launch"})
	assert.Error(t, err)
}

func TestExpandEmptyWildcard(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.Expand([]string{"spaceship.*"})
	assert.Error(t, err)
}

func TestCatalogRejectsBadGrant(t *testing.T) {
	_, err := NewCatalog(models.PermissionCatalog(), []models.RoleGrant{
		{Name: "broken", Patterns: []string{"nonexistent.thing"}},
	})
	assert.Error(t, err)
}

func TestRolePermissions(t *testing.T) {
	catalog := newTestCatalog(t)

	superAdmin := catalog.RolePermissions(models.RoleSuperAdmin)
	assert.ElementsMatch(t, models.PermissionCatalog(), superAdmin)

	viewer := catalog.RolePermissions(models.RoleViewer)
	assert.Contains(t, viewer, models.PermRequirementRead)
	assert.NotContains(t, viewer, models.PermRequirementApprove)

	assert.Empty(t, catalog.RolePermissions("unknown_role"))
}

func TestGuardHasPermission(t *testing.T) {
	catalog := newTestCatalog(t)
	guard := NewGuard(catalog)

	approver := testActor{roles: []string{models.RoleApprover}}
	assert.True(t, guard.HasPermission(approver, models.PermRequirementApprove))
	assert.False(t, guard.HasPermission(approver, models.PermUserCreate))

	root := testActor{superuser: true}
	assert.True(t, guard.HasPermission(root, models.PermUserCreate))

	assert.False(t, guard.HasPermission(nil, models.PermRequirementRead))
}

func TestGuardHasRole(t *testing.T) {
	guard := NewGuard(newTestCatalog(t))

	manager := testActor{roles: []string{models.RoleHiringManager}}
	assert.True(t, guard.HasRole(manager, models.RoleHiringManager))
	assert.False(t, guard.HasRole(manager, models.RoleAdmin))
	assert.True(t, guard.HasAnyRole(manager, models.RoleAdmin, models.RoleHiringManager))

	root := testActor{superuser: true}
	assert.True(t, guard.HasRole(root, models.RoleAdmin))
}

func TestRequiredPermissionRouting(t *testing.T) {
	NewHandler()

	cases := []struct {
		method     string
		path       string
		permission string
	}{
		{"POST", "/api/v1/requirement", models.PermRequirementCreate},
		{"POST", "/api/v1/requirement/list", models.PermRequirementRead},
		{"GET", "/api/v1/requirement/abc-123", models.PermRequirementRead},
		{"POST", "/api/v1/requirement/abc-123/submit", models.PermRequirementCreate},
		{"POST", "/api/v1/requirement/abc-123/approve", models.PermRequirementApprove},
		{"POST", "/api/v1/requirement/abc-123/reject", models.PermRequirementApprove},
		{"POST", "/api/v1/requirement/abc-123/assign-recruiter/def-456", models.PermRequirementAssign},
		{"GET", "/api/v1/approvals/pending", models.PermRequirementRead},
		{"POST", "/api/v1/requirement/abc-123/publish", models.PermJobPostingPublish},
		{"PUT", "/api/v1/users/abc-123/roles", models.PermUserAssignRole},
		{"GET", "/api/v1/dict/departments", models.PermDictRead},
		{"POST", "/api/v1/dict/departments", models.PermDictManage},
	}
	for _, tc := range cases {
		permission, found := Instance.RequiredPermission(tc.method, tc.path)
		require.True(t, found, "%s %s", tc.method, tc.path)
		assert.Equal(t, tc.permission, permission, "%s %s", tc.method, tc.path)
	}

	// unlisted routes fall through to any authenticated user
	_, found := Instance.RequiredPermission("GET", "/api/v1/auth/profile")
	assert.False(t, found)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/api/v1/requirement", normalizePath("/api/v1/requirement/"))
	assert.Equal(t, "/api/v1/requirement", normalizePath("api/v1//requirement"))
	assert.Equal(t, "/", normalizePath(""))
}
