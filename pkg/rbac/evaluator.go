package rbac

// Evaluator answers access-control questions about a Principal.
// It holds no state besides the immutable catalog and never retains the
// principal, so a single Evaluator can be shared across goroutines.
//
// Every method is total and fails closed: a nil principal, an unknown token
// or an empty query is never granted.
type Evaluator struct {
	catalog *Catalog
}

// NewEvaluator returns an Evaluator over catalog. A nil catalog selects Default().
func NewEvaluator(catalog *Catalog) *Evaluator {
	if catalog == nil {
		catalog = Default()
	}
	return &Evaluator{catalog: catalog}
}

// Catalog returns the catalog the evaluator reads.
func (e *Evaluator) Catalog() *Catalog {
	return e.catalog
}

// HasPermission reports whether user holds permission.
// Order: nil user denies, admin grants, explicit overrides grant,
// then the primary role's catalog defaults decide.
func (e *Evaluator) HasPermission(user *Principal, permission Permission) bool {
	if user == nil {
		return false
	}
	if user.Role == RoleAdmin {
		return true
	}
	for _, p := range user.Permissions {
		if p == permission {
			return true
		}
	}
	return e.catalog.roleGrants(user.Role, permission)
}

// HasAnyPermission reports whether user holds at least one of permissions.
// An empty list is never satisfied.
func (e *Evaluator) HasAnyPermission(user *Principal, permissions ...Permission) bool {
	if user == nil || len(permissions) == 0 {
		return false
	}
	for _, p := range permissions {
		if e.HasPermission(user, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether user holds every one of permissions.
// An empty list is never satisfied: a check that names nothing grants nothing.
func (e *Evaluator) HasAllPermissions(user *Principal, permissions ...Permission) bool {
	if user == nil || len(permissions) == 0 {
		return false
	}
	for _, p := range permissions {
		if !e.HasPermission(user, p) {
			return false
		}
	}
	return true
}

// HasRole reports whether role is the primary role or one of the secondary roles.
func (e *Evaluator) HasRole(user *Principal, role Role) bool {
	if user == nil {
		return false
	}
	if user.Role == role {
		return true
	}
	for _, r := range user.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether user has at least one of roles.
func (e *Evaluator) HasAnyRole(user *Principal, roles ...Role) bool {
	if user == nil || len(roles) == 0 {
		return false
	}
	for _, r := range roles {
		if e.HasRole(user, r) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether user has every one of roles.
func (e *Evaluator) HasAllRoles(user *Principal, roles ...Role) bool {
	if user == nil || len(roles) == 0 {
		return false
	}
	for _, r := range roles {
		if !e.HasRole(user, r) {
			return false
		}
	}
	return true
}

// HasMinimumRole reports whether the primary role is at least as privileged as minimum.
// Unknown roles sit at level 0.
func (e *Evaluator) HasMinimumRole(user *Principal, minimum Role) bool {
	if user == nil {
		return false
	}
	return e.catalog.HierarchyLevel(user.Role) >= e.catalog.HierarchyLevel(minimum)
}

// UserPermissions returns the union of the primary role's defaults and the
// explicit overrides, deduplicated. Catalog permissions come first in
// universe order, followed by any overrides the catalog does not know.
func (e *Evaluator) UserPermissions(user *Principal) []Permission {
	if user == nil {
		return []Permission{}
	}
	if user.Role == RoleAdmin {
		return e.catalog.Permissions()
	}

	seen := make(map[Permission]struct{})
	known := make([]Permission, 0, len(user.Permissions))
	var unknown []Permission
	add := func(p Permission) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		if _, ok := e.catalog.position[p]; ok {
			known = append(known, p)
		} else {
			unknown = append(unknown, p)
		}
	}
	for _, p := range e.catalog.PermissionsForRole(user.Role) {
		add(p)
	}
	for _, p := range user.Permissions {
		add(p)
	}
	e.catalog.sortPermissions(known)
	return append(known, unknown...)
}

// IsAdmin reports whether the primary role is admin.
// It matches the admin short-circuit in HasPermission: IsAdmin implies every permission.
func (e *Evaluator) IsAdmin(user *Principal) bool {
	return user != nil && user.Role == RoleAdmin
}

// IsManagerOrAbove reports whether the primary role is admin or manager.
func (e *Evaluator) IsManagerOrAbove(user *Principal) bool {
	return user != nil && (user.Role == RoleAdmin || user.Role == RoleManager)
}

// CanAssignRole reports whether actor may grant target to another user.
// The actor needs role.assign and, unless admin, a strictly higher level than target.
// Unknown target roles are never assignable.
func (e *Evaluator) CanAssignRole(actor *Principal, target Role) bool {
	if actor == nil || !e.catalog.knownRole(target) {
		return false
	}
	if !e.HasPermission(actor, PermRoleAssign) {
		return false
	}
	if e.IsAdmin(actor) {
		return true
	}
	return e.catalog.HierarchyLevel(actor.Role) > e.catalog.HierarchyLevel(target)
}
