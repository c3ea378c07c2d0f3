package access

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tillpoint/posaccess/core"
	"github.com/tillpoint/posaccess/pkg/customrole"
	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

var (
	errUnknownTemplate   = core.NewHTTPError(http.StatusBadRequest, "unknown_template")
	errUnknownCategory   = core.NewHTTPError(http.StatusNotFound, "unknown_category")
	errHierarchyTooHigh  = core.NewHTTPError(http.StatusForbidden, "hierarchy_too_high")
	errPermissionNotHeld = core.NewHTTPError(http.StatusForbidden, "permission_not_held")
)

func (h *handlers) listCustomRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSONList(w, roles, map[string]any{"total": len(roles)})
}

func (h *handlers) getCustomRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.roles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, role)
}

func (h *handlers) createCustomRole(w http.ResponseWriter, r *http.Request) {
	var in customrole.CreateInput
	if err := core.DecodeJSON(w, r, &in); err != nil {
		core.JSONError(w, err)
		return
	}
	role, err := h.roles.CreateFromTemplate(r.Context(), rbac.PrincipalFromContext(r.Context()), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusCreated, role)
}

func (h *handlers) updateCustomRole(w http.ResponseWriter, r *http.Request) {
	var in customrole.UpdateInput
	if err := core.DecodeJSON(w, r, &in); err != nil {
		core.JSONError(w, err)
		return
	}
	role, err := h.roles.Update(r.Context(), rbac.PrincipalFromContext(r.Context()), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, role)
}

type setPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (h *handlers) setCustomRolePermissions(w http.ResponseWriter, r *http.Request) {
	var req setPermissionsRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	role, err := h.roles.SetPermissions(r.Context(), rbac.PrincipalFromContext(r.Context()), chi.URLParam(r, "id"), req.Permissions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, role)
}

type toggleCategoryRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *handlers) toggleCustomRoleCategory(w http.ResponseWriter, r *http.Request) {
	var req toggleCategoryRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.JSONError(w, err)
		return
	}
	role, err := h.roles.ToggleCategory(r.Context(), rbac.PrincipalFromContext(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "categoryID"), req.Enabled)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	core.JSON(w, http.StatusOK, role)
}

func (h *handlers) deleteCustomRole(w http.ResponseWriter, r *http.Request) {
	if err := h.roles.Delete(r.Context(), rbac.PrincipalFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps service errors onto HTTP errors. Unexpected errors are logged
// and answered with 500.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	var mapped error
	switch {
	case errors.Is(err, customrole.ErrNotFound):
		mapped = core.ErrNotFound
	case errors.Is(err, customrole.ErrDuplicateID):
		mapped = core.ErrConflict
	case errors.Is(err, customrole.ErrUnauthenticated):
		mapped = core.ErrUnauthorized
	case errors.Is(err, customrole.ErrUnknownTemplate):
		mapped = errUnknownTemplate
	case errors.Is(err, customrole.ErrUnknownCategory):
		mapped = errUnknownCategory
	case errors.Is(err, customrole.ErrHierarchyTooHigh):
		mapped = errHierarchyTooHigh
	case errors.Is(err, customrole.ErrPermissionNotHeld):
		mapped = errPermissionNotHeld
	case errors.Is(err, customrole.ErrInvalidInput):
		// Validator details survive the join and turn into a 422.
		mapped = errors.Join(core.ErrBadRequest, err)
	default:
		h.log.ErrorContext(r.Context(), "custom role request failed",
			logger.Error(err),
			logger.RequestID(requestID(r)),
		)
		mapped = err
	}
	core.JSONError(w, mapped)
}
