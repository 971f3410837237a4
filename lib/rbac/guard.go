package rbac

// Actor is the capability view of an authenticated user: the guard never
// probes concrete types, it only needs roles and the superuser flag.
type Actor interface {
	RoleNames() []string
	Superuser() bool
}

// Guard is a pure predicate over (actor, catalog). It never mutates state,
// callers must fail their operation when a check returns false.
type Guard struct {
	catalog *Catalog
}

func NewGuard(catalog *Catalog) *Guard {
	return &Guard{catalog: catalog}
}

func (g *Guard) HasRole(actor Actor, role string) bool {
	if actor == nil {
		return false
	}
	if actor.Superuser() {
		return true
	}
	for _, name := range actor.RoleNames() {
		if name == role {
			return true
		}
	}
	return false
}

func (g *Guard) HasAnyRole(actor Actor, roles ...string) bool {
	for _, role := range roles {
		if g.HasRole(actor, role) {
			return true
		}
	}
	return false
}

func (g *Guard) HasPermission(actor Actor, permission string) bool {
	if actor == nil {
		return false
	}
	if actor.Superuser() {
		return true
	}
	for _, role := range actor.RoleNames() {
		for _, name := range g.catalog.RolePermissions(role) {
			if name == permission {
				return true
			}
		}
	}
	return false
}
