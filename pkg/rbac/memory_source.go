package rbac

import "context"

// inMemSource serves catalog data held in memory.
type inMemSource struct {
	data CatalogData
}

// NewInMemSource returns a CatalogSource over data. The input is deep-copied,
// so later changes by the caller do not leak into catalogs built from it.
// Useful for synthetic catalogs in tests.
func NewInMemSource(data CatalogData) CatalogSource {
	return &inMemSource{data: cloneCatalogData(data)}
}

func (s *inMemSource) Load(_ context.Context) (CatalogData, error) {
	return cloneCatalogData(s.data), nil
}

func cloneCatalogData(in CatalogData) CatalogData {
	out := CatalogData{Permissions: clonePermissions(in.Permissions)}
	if in.Roles != nil {
		out.Roles = make([]RoleDefinition, len(in.Roles))
		for i, r := range in.Roles {
			out.Roles[i] = cloneRoleDefinition(r)
		}
	}
	if in.Templates != nil {
		out.Templates = make([]RoleTemplate, len(in.Templates))
		for i, t := range in.Templates {
			out.Templates[i] = cloneTemplate(t)
		}
	}
	if in.Categories != nil {
		out.Categories = make([]PermissionCategory, len(in.Categories))
		for i, c := range in.Categories {
			out.Categories[i] = cloneCategory(c)
		}
	}
	return out
}
