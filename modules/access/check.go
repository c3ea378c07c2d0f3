package access

import (
	"net/http"

	"github.com/tillpoint/posaccess/core"
	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

type meResponse struct {
	Principal        *rbac.Principal   `json:"principal"`
	Permissions      []rbac.Permission `json:"permissions"`
	Hierarchy        int               `json:"hierarchy"`
	IsAdmin          bool              `json:"is_admin"`
	IsManagerOrAbove bool              `json:"is_manager_or_above"`
	AssignableRoles  []rbac.Role       `json:"assignable_roles"`
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	p := rbac.PrincipalFromContext(r.Context())

	assignable := []rbac.Role{}
	for _, role := range h.catalog.Roles() {
		if h.evaluator.CanAssignRole(p, role) {
			assignable = append(assignable, role)
		}
	}
	core.JSON(w, http.StatusOK, meResponse{
		Principal:        p,
		Permissions:      h.evaluator.UserPermissions(p),
		Hierarchy:        h.catalog.HierarchyLevel(p.Role),
		IsAdmin:          h.evaluator.IsAdmin(p),
		IsManagerOrAbove: h.evaluator.IsManagerOrAbove(p),
		AssignableRoles:  assignable,
	})
}

const (
	modeAll = "all"
	modeAny = "any"
)

type checkRequest struct {
	Permissions []rbac.Permission `json:"permissions"`
	Roles       []rbac.Role       `json:"roles"`
	MinimumRole rbac.Role         `json:"minimum_role"`
	Mode        string            `json:"mode"`
}

type checkResponse struct {
	Allowed bool            `json:"allowed"`
	Mode    string          `json:"mode"`
	Checks  map[string]bool `json:"checks"`
}

// check answers whether the caller passes every supplied criterion. Mode
// selects any/all semantics inside the permission and role lists; the
// criteria themselves are always combined with AND. A request with no
// criteria is denied.
func (h *handlers) check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	switch req.Mode {
	case "":
		req.Mode = modeAll
	case modeAll, modeAny:
	default:
		core.JSONError(w, core.NewHTTPError(http.StatusBadRequest, "invalid_mode"))
		return
	}

	p := rbac.PrincipalFromContext(r.Context())
	checks := make(map[string]bool, 3)
	if len(req.Permissions) > 0 {
		if req.Mode == modeAny {
			checks["permissions"] = h.evaluator.HasAnyPermission(p, req.Permissions...)
		} else {
			checks["permissions"] = h.evaluator.HasAllPermissions(p, req.Permissions...)
		}
	}
	if len(req.Roles) > 0 {
		if req.Mode == modeAny {
			checks["roles"] = h.evaluator.HasAnyRole(p, req.Roles...)
		} else {
			checks["roles"] = h.evaluator.HasAllRoles(p, req.Roles...)
		}
	}
	if req.MinimumRole != "" {
		checks["minimum_role"] = h.evaluator.HasMinimumRole(p, req.MinimumRole)
	}

	allowed := len(checks) > 0
	for _, ok := range checks {
		allowed = allowed && ok
	}
	h.log.DebugContext(r.Context(), "access check",
		logger.UserID(p.ID),
		logger.Role(p.Role),
		logger.Permission(req.Permissions),
	)
	core.JSON(w, http.StatusOK, checkResponse{Allowed: allowed, Mode: req.Mode, Checks: checks})
}
