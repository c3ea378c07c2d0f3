package rbac

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/tillpoint/posaccess/pkg/scopes"
)

// CatalogData is the raw material a Catalog is built from.
// The admin role's Permissions are ignored: admin always holds every permission.
type CatalogData struct {
	Permissions []Permission         `yaml:"permissions"`
	Roles       []RoleDefinition     `yaml:"roles"`
	Templates   []RoleTemplate       `yaml:"templates"`
	Categories  []PermissionCategory `yaml:"categories"`
}

// CatalogSource provides catalog data.
type CatalogSource interface {
	// Load returns the vocabulary, role mappings, templates and categories.
	Load(ctx context.Context) (CatalogData, error)
}

// Catalog is the immutable role-permission catalog.
// It is safe for concurrent use; nothing is mutated after NewCatalog returns.
type Catalog struct {
	universe  []Permission
	position  map[Permission]int
	roles     []RoleDefinition
	roleIndex map[Role]int
	grants    map[Role]map[Permission]struct{}

	templates     []RoleTemplate
	templateIndex map[string]int

	categories    []PermissionCategory
	categoryIndex map[string]int
}

// NewCatalog loads data from source, validates it and precomputes role grants.
func NewCatalog(ctx context.Context, source CatalogSource) (*Catalog, error) {
	data, err := source.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrCatalogSource, err)
	}
	return buildCatalog(data)
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns the catalog built from BuiltinSource.
// It panics if the builtin data is inconsistent, which is a programming error.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(context.Background(), BuiltinSource())
		if err != nil {
			panic(fmt.Sprintf("rbac: builtin catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func buildCatalog(data CatalogData) (*Catalog, error) {
	c := &Catalog{
		universe:      make([]Permission, 0, len(data.Permissions)),
		position:      make(map[Permission]int, len(data.Permissions)),
		roleIndex:     make(map[Role]int, len(data.Roles)),
		grants:        make(map[Role]map[Permission]struct{}, len(data.Roles)),
		templateIndex: make(map[string]int, len(data.Templates)),
		categoryIndex: make(map[string]int, len(data.Categories)),
	}

	for _, p := range data.Permissions {
		if p == "" {
			return nil, errors.Join(ErrInvalidToken, errors.New("empty permission"))
		}
		if _, dup := c.position[p]; dup {
			return nil, errors.Join(ErrDuplicateID, fmt.Errorf("permission %q", p))
		}
		c.position[p] = len(c.universe)
		c.universe = append(c.universe, p)
	}

	for _, def := range data.Roles {
		if def.Role == "" {
			return nil, errors.Join(ErrInvalidToken, errors.New("empty role"))
		}
		if _, dup := c.roleIndex[def.Role]; dup {
			return nil, errors.Join(ErrDuplicateID, fmt.Errorf("role %q", def.Role))
		}
		if def.Hierarchy < 0 {
			return nil, errors.Join(ErrInvalidHierarchy, fmt.Errorf("role %q: %d", def.Role, def.Hierarchy))
		}
		def = cloneRoleDefinition(def)
		if def.Role == RoleAdmin {
			def.Permissions = clonePermissions(c.universe)
		} else {
			perms, err := c.normalize(def.Permissions)
			if err != nil {
				return nil, fmt.Errorf("role %q: %w", def.Role, err)
			}
			def.Permissions = perms
		}
		set := make(map[Permission]struct{}, len(def.Permissions))
		for _, p := range def.Permissions {
			set[p] = struct{}{}
		}
		c.grants[def.Role] = set
		c.roleIndex[def.Role] = len(c.roles)
		c.roles = append(c.roles, def)
	}
	if _, ok := c.roleIndex[RoleAdmin]; !ok {
		return nil, ErrMissingAdminRole
	}

	for _, t := range data.Templates {
		if t.ID == "" {
			return nil, errors.Join(ErrInvalidToken, errors.New("empty template id"))
		}
		if _, dup := c.templateIndex[t.ID]; dup {
			return nil, errors.Join(ErrDuplicateID, fmt.Errorf("template %q", t.ID))
		}
		if t.Hierarchy < 0 {
			return nil, errors.Join(ErrInvalidHierarchy, fmt.Errorf("template %q: %d", t.ID, t.Hierarchy))
		}
		t = cloneTemplate(t)
		perms, err := c.normalize(t.Permissions)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.ID, err)
		}
		t.Permissions = perms
		c.templateIndex[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
	}

	for _, cat := range data.Categories {
		if cat.ID == "" {
			return nil, errors.Join(ErrInvalidToken, errors.New("empty category id"))
		}
		if _, dup := c.categoryIndex[cat.ID]; dup {
			return nil, errors.Join(ErrDuplicateID, fmt.Errorf("category %q", cat.ID))
		}
		cat = cloneCategory(cat)
		perms, err := c.normalize(cat.Permissions)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.ID, err)
		}
		cat.Permissions = perms
		c.categoryIndex[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	return c, nil
}

// normalize validates tokens and returns them deduplicated in universe order.
func (c *Catalog) normalize(perms []Permission) ([]Permission, error) {
	seen := make(map[Permission]struct{}, len(perms))
	out := make([]Permission, 0, len(perms))
	for _, p := range perms {
		if _, ok := c.position[p]; !ok {
			return nil, errors.Join(ErrInvalidToken, fmt.Errorf("permission %q", p))
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	c.sortPermissions(out)
	return out, nil
}

func (c *Catalog) sortPermissions(perms []Permission) {
	slices.SortStableFunc(perms, func(a, b Permission) int {
		return c.position[a] - c.position[b]
	})
}

// Permissions returns the permission universe in declaration order.
func (c *Catalog) Permissions() []Permission {
	return clonePermissions(c.universe)
}

// PermissionsForRole returns the default permissions of role.
// For admin it is the full universe. Unknown roles yield nil.
func (c *Catalog) PermissionsForRole(role Role) []Permission {
	i, ok := c.roleIndex[role]
	if !ok {
		return nil
	}
	return clonePermissions(c.roles[i].Permissions)
}

// HierarchyLevel returns the hierarchy level of role, or 0 for unknown roles.
func (c *Catalog) HierarchyLevel(role Role) int {
	i, ok := c.roleIndex[role]
	if !ok {
		return 0
	}
	return c.roles[i].Hierarchy
}

// RoleInfo returns the definition of role.
func (c *Catalog) RoleInfo(role Role) (RoleDefinition, bool) {
	i, ok := c.roleIndex[role]
	if !ok {
		return RoleDefinition{}, false
	}
	return cloneRoleDefinition(c.roles[i]), true
}

// Roles returns all roles, most privileged first.
// Roles sharing a level keep their declaration order.
func (c *Catalog) Roles() []Role {
	out := make([]Role, len(c.roles))
	for i, def := range c.roles {
		out[i] = def.Role
	}
	slices.SortStableFunc(out, func(a, b Role) int {
		return c.HierarchyLevel(b) - c.HierarchyLevel(a)
	})
	return out
}

// Template returns the template with the given id.
func (c *Catalog) Template(id string) (RoleTemplate, bool) {
	i, ok := c.templateIndex[id]
	if !ok {
		return RoleTemplate{}, false
	}
	return cloneTemplate(c.templates[i]), true
}

// Templates returns every template in declaration order.
func (c *Catalog) Templates() []RoleTemplate {
	return c.TemplatesByCategory(TemplateCategoryAll)
}

// TemplatesByCategory returns templates in category, in declaration order.
// TemplateCategoryAll returns every template.
func (c *Catalog) TemplatesByCategory(category string) []RoleTemplate {
	out := make([]RoleTemplate, 0, len(c.templates))
	for _, t := range c.templates {
		if category == TemplateCategoryAll || t.Category == category {
			out = append(out, cloneTemplate(t))
		}
	}
	return out
}

// Category returns the permission category with the given id.
func (c *Catalog) Category(id string) (PermissionCategory, bool) {
	i, ok := c.categoryIndex[id]
	if !ok {
		return PermissionCategory{}, false
	}
	return cloneCategory(c.categories[i]), true
}

// Categories returns every permission category in declaration order.
func (c *Catalog) Categories() []PermissionCategory {
	out := make([]PermissionCategory, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cloneCategory(cat)
	}
	return out
}

// ParsePermission validates s against the vocabulary.
func (c *Catalog) ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if _, ok := c.position[p]; !ok {
		return "", errors.Join(ErrInvalidToken, fmt.Errorf("permission %q", s))
	}
	return p, nil
}

// ParseRole validates s against the vocabulary.
func (c *Catalog) ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := c.roleIndex[r]; !ok {
		return "", errors.Join(ErrInvalidToken, fmt.Errorf("role %q", s))
	}
	return r, nil
}

// ExpandPermissions resolves exact tokens and wildcard patterns ("inventory.*", "*")
// into permissions, deduplicated in universe order. Exact tokens must exist;
// a pattern matching nothing is not an error.
func (c *Catalog) ExpandPermissions(patterns ...string) ([]Permission, error) {
	seen := make(map[Permission]struct{})
	for _, pattern := range scopes.Normalize(patterns) {
		if !scopes.IsPattern(pattern) {
			p, err := c.ParsePermission(pattern)
			if err != nil {
				return nil, err
			}
			seen[p] = struct{}{}
			continue
		}
		for _, p := range c.universe {
			if scopes.Matches(string(p), pattern) {
				seen[p] = struct{}{}
			}
		}
	}
	out := make([]Permission, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	c.sortPermissions(out)
	return out, nil
}

func (c *Catalog) roleGrants(role Role, p Permission) bool {
	set, ok := c.grants[role]
	if !ok {
		return false
	}
	_, ok = set[p]
	return ok
}

func (c *Catalog) knownRole(role Role) bool {
	_, ok := c.roleIndex[role]
	return ok
}
