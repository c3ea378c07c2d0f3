package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tillpoint/posaccess/core"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

type roleView struct {
	Role        rbac.Role         `json:"role"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Hierarchy   int               `json:"hierarchy"`
	Permissions []rbac.Permission `json:"permissions"`
}

func (h *handlers) listPermissions(w http.ResponseWriter, _ *http.Request) {
	perms := h.catalog.Permissions()
	core.JSONList(w, perms, map[string]any{"total": len(perms)})
}

func (h *handlers) listRoles(w http.ResponseWriter, _ *http.Request) {
	roles := h.catalog.Roles()
	out := make([]roleView, 0, len(roles))
	for _, role := range roles {
		info, _ := h.catalog.RoleInfo(role)
		out = append(out, roleView{
			Role:        role,
			Name:        info.Name,
			Description: info.Description,
			Hierarchy:   info.Hierarchy,
			Permissions: h.catalog.PermissionsForRole(role),
		})
	}
	core.JSONList(w, out, map[string]any{"total": len(out)})
}

func (h *handlers) listCategories(w http.ResponseWriter, _ *http.Request) {
	cats := h.catalog.Categories()
	core.JSONList(w, cats, map[string]any{"total": len(cats)})
}

func (h *handlers) getCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.catalog.Category(chi.URLParam(r, "id"))
	if !ok {
		core.JSONError(w, core.ErrNotFound)
		return
	}
	core.JSON(w, http.StatusOK, cat)
}

// listTemplates filters by ?category=, where "all" or an empty value lists everything.
func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = rbac.TemplateCategoryAll
	}
	tpls := h.catalog.TemplatesByCategory(category)
	core.JSONList(w, tpls, map[string]any{"total": len(tpls), "category": category})
}

func (h *handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, ok := h.catalog.Template(chi.URLParam(r, "id"))
	if !ok {
		core.JSONError(w, core.ErrNotFound)
		return
	}
	core.JSON(w, http.StatusOK, tpl)
}
