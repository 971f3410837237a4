package rbac

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"hiring-hare-backend/models"
)

// Catalog is the full permission catalog plus the raw pattern list of every
// role. It is loaded once at process start and read-only afterwards, so no
// locking is needed on the request path.
type Catalog struct {
	permissions  map[string]struct{}
	rolePatterns map[string][]string
}

func NewCatalog(permissions []string, grants []models.RoleGrant) (*Catalog, error) {
	c := &Catalog{
		permissions:  make(map[string]struct{}, len(permissions)),
		rolePatterns: make(map[string][]string, len(grants)),
	}
	for _, name := range permissions {
		if !strings.Contains(name, ".") {
			return nil, errors.Errorf("malformed permission name %q, want resource.action", name)
		}
		c.permissions[name] = struct{}{}
	}
	for _, grant := range grants {
		// fail fast on unknown patterns, this is configuration, not request input
		if _, err := c.Expand(grant.Patterns); err != nil {
			return nil, errors.Wrapf(err, "role %q", grant.Name)
		}
		c.rolePatterns[grant.Name] = grant.Patterns
	}
	return c, nil
}

// Expand resolves a raw pattern list against the catalog: exact names,
// resource.* wildcards and the full * wildcard, de-duplicated and sorted.
// Expansion is pure and recomputed at check time, never stored.
func (c *Catalog) Expand(patterns []string) ([]string, error) {
	set := map[string]struct{}{}
	for _, pattern := range patterns {
		switch {
		case pattern == "*":
			for name := range c.permissions {
				set[name] = struct{}{}
			}
		case strings.HasSuffix(pattern, ".*"):
			resource := strings.TrimSuffix(pattern, ".*")
			matched := false
			for name := range c.permissions {
				if strings.HasPrefix(name, resource+".") {
					set[name] = struct{}{}
					matched = true
				}
			}
			if !matched {
				return nil, errors.Errorf("wildcard %q matches no catalog permission", pattern)
			}
		default:
			if _, ok := c.permissions[pattern]; !ok {
				return nil, errors.Errorf("unknown permission %q", pattern)
			}
			set[pattern] = struct{}{}
		}
	}
	result := make([]string, 0, len(set))
	for name := range set {
		result = append(result, name)
	}
	sort.Strings(result)
	return result, nil
}

// RolePermissions resolves the effective permission set of a role.
// Unknown roles resolve to nothing.
func (c *Catalog) RolePermissions(role string) []string {
	patterns, ok := c.rolePatterns[role]
	if !ok {
		return nil
	}
	expanded, err := c.Expand(patterns)
	if err != nil {
		// patterns were validated in NewCatalog
		return nil
	}
	return expanded
}

func (c *Catalog) Permissions() []string {
	result := make([]string, 0, len(c.permissions))
	for name := range c.permissions {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
