package rbac

// Permission is an atomic capability token such as "pos.access".
// Permissions have no sub-structure; relationships exist only through roles.
type Permission string

// String returns the token value.
func (p Permission) String() string { return string(p) }

// Role is a named bundle of default permissions with a hierarchy level.
type Role string

// String returns the token value.
func (r Role) String() string { return string(r) }

// Principal is the authenticated actor as consumed by the evaluator.
// A nil *Principal means no one is signed in.
type Principal struct {
	// ID identifies the principal. The evaluator does not read it.
	ID string `json:"id"`

	// Role is the primary role.
	Role Role `json:"role"`

	// Roles lists secondary roles for multi-role assignment.
	Roles []Role `json:"roles,omitempty"`

	// Permissions are explicit overrides granted beyond the role defaults.
	Permissions []Permission `json:"permissions,omitempty"`
}

// RoleDefinition declares a role in a catalog source.
type RoleDefinition struct {
	Role        Role         `json:"role" yaml:"role"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Hierarchy   int          `json:"hierarchy" yaml:"hierarchy"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// RoleTemplate is a named preset used to seed a new custom role.
// Templates have no effect on evaluation.
type RoleTemplate struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Icon        string       `json:"icon" yaml:"icon"`
	Category    string       `json:"category" yaml:"category"`
	Hierarchy   int          `json:"hierarchy" yaml:"hierarchy"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// PermissionCategory groups related permissions for presentation and bulk toggling.
type PermissionCategory struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Icon        string       `json:"icon" yaml:"icon"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// TemplateCategoryAll selects every template in TemplatesByCategory.
const TemplateCategoryAll = "all"

func clonePermissions(in []Permission) []Permission {
	if in == nil {
		return nil
	}
	out := make([]Permission, len(in))
	copy(out, in)
	return out
}

func cloneTemplate(t RoleTemplate) RoleTemplate {
	t.Permissions = clonePermissions(t.Permissions)
	return t
}

func cloneCategory(c PermissionCategory) PermissionCategory {
	c.Permissions = clonePermissions(c.Permissions)
	return c
}

func cloneRoleDefinition(d RoleDefinition) RoleDefinition {
	d.Permissions = clonePermissions(d.Permissions)
	return d
}
