package rbac

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tillpoint/posaccess/pkg/logger"
)

// Middleware wires evaluator checks into HTTP handlers.
// The principal is read from the request context (see WithPrincipal).
// Requests without a principal get 401, denied requests get 403.
type Middleware struct {
	Evaluator *Evaluator
	Logger    *slog.Logger

	// ErrorHandler writes the rejection. It receives ErrUnauthenticated or
	// ErrForbidden. Nil falls back to a plain-text http.Error.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

// DefaultErrorHandler answers ErrUnauthenticated with 401 and anything else with 403.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusForbidden
	if errors.Is(err, ErrUnauthenticated) {
		status = http.StatusUnauthorized
	}
	http.Error(w, http.StatusText(status), status)
}

// RequirePermission allows the request when the principal holds permission.
func (m Middleware) RequirePermission(permission Permission) func(http.Handler) http.Handler {
	return m.require("permission", func(p *Principal) bool {
		return m.Evaluator.HasPermission(p, permission)
	})
}

// RequireAnyPermission allows the request when the principal holds at least one of permissions.
func (m Middleware) RequireAnyPermission(permissions ...Permission) func(http.Handler) http.Handler {
	return m.require("any_permission", func(p *Principal) bool {
		return m.Evaluator.HasAnyPermission(p, permissions...)
	})
}

// RequireAllPermissions allows the request when the principal holds every one of permissions.
func (m Middleware) RequireAllPermissions(permissions ...Permission) func(http.Handler) http.Handler {
	return m.require("all_permissions", func(p *Principal) bool {
		return m.Evaluator.HasAllPermissions(p, permissions...)
	})
}

// RequireRole allows the request when the principal has role as primary or secondary role.
func (m Middleware) RequireRole(role Role) func(http.Handler) http.Handler {
	return m.require("role", func(p *Principal) bool {
		return m.Evaluator.HasRole(p, role)
	})
}

// RequireAnyRole allows the request when the principal has at least one of roles.
func (m Middleware) RequireAnyRole(roles ...Role) func(http.Handler) http.Handler {
	return m.require("any_role", func(p *Principal) bool {
		return m.Evaluator.HasAnyRole(p, roles...)
	})
}

// RequireMinimumRole allows the request when the primary role is at least as privileged as minimum.
func (m Middleware) RequireMinimumRole(minimum Role) func(http.Handler) http.Handler {
	return m.require("minimum_role", func(p *Principal) bool {
		return m.Evaluator.HasMinimumRole(p, minimum)
	})
}

func (m Middleware) require(check string, allow func(*Principal) bool) func(http.Handler) http.Handler {
	onError := m.ErrorHandler
	if onError == nil {
		onError = DefaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				onError(w, r, ErrUnauthenticated)
				return
			}
			if !allow(principal) {
				if m.Logger != nil {
					m.Logger.InfoContext(r.Context(), "rbac denied",
						slog.String("check", check),
						logger.UserID(principal.ID),
						logger.Role(principal.Role),
						slog.String("path", r.URL.Path),
					)
				}
				onError(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
