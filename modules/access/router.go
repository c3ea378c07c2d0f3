package access

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/tillpoint/posaccess/core"
	"github.com/tillpoint/posaccess/pkg/authtoken"
	"github.com/tillpoint/posaccess/pkg/customrole"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

// Options configures Router. Evaluator is required; Verifier and Roles are
// optional and disable authentication and custom role routes when nil.
type Options struct {
	Evaluator *rbac.Evaluator
	Verifier  *authtoken.Verifier
	Roles     *customrole.Service
	Logger    *slog.Logger

	// CheckRateLimit requests per CheckRateWindow are allowed on POST /check
	// for each caller. Zero means 120 per minute.
	CheckRateLimit  int
	CheckRateWindow time.Duration
}

type handlers struct {
	evaluator *rbac.Evaluator
	catalog   *rbac.Catalog
	roles     *customrole.Service
	log       *slog.Logger
}

// Router builds the access API.
func Router(opts Options) chi.Router {
	if opts.Evaluator == nil {
		panic("access: Router: nil evaluator")
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	limit, window := opts.CheckRateLimit, opts.CheckRateWindow
	if limit <= 0 {
		limit = 120
	}
	if window <= 0 {
		window = time.Minute
	}

	h := &handlers{
		evaluator: opts.Evaluator,
		catalog:   opts.Evaluator.Catalog(),
		roles:     opts.Roles,
		log:       log,
	}
	guard := rbac.Middleware{Evaluator: opts.Evaluator, Logger: log, ErrorHandler: writeAccessError}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if opts.Verifier != nil {
		r.Use(authtoken.MiddlewareWithConfig(authtoken.MiddlewareConfig{
			Verifier:     opts.Verifier,
			ErrorHandler: writeAccessError,
		}))
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { core.JSONError(w, core.ErrNotFound) })

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/permissions", h.listPermissions)
		r.Get("/roles", h.listRoles)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)
		r.Get("/templates", h.listTemplates)
		r.Get("/templates/{id}", h.getTemplate)
	})

	r.Group(func(r chi.Router) {
		r.Use(requirePrincipal)
		r.Get("/me", h.me)
		r.With(httprate.Limit(limit, window,
			httprate.WithKeyFuncs(principalKey),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				core.JSONError(w, core.ErrTooManyRequests)
			}),
		)).Post("/check", h.check)
	})

	if opts.Roles != nil {
		r.Route("/custom-roles", func(r chi.Router) {
			r.Use(guard.RequirePermission(rbac.PermRoleView))
			r.Get("/", h.listCustomRoles)
			r.Get("/{id}", h.getCustomRole)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequirePermission(rbac.PermRoleManage))
				r.Post("/", h.createCustomRole)
				r.Patch("/{id}", h.updateCustomRole)
				r.Put("/{id}/permissions", h.setCustomRolePermissions)
				r.Put("/{id}/categories/{categoryID}", h.toggleCustomRoleCategory)
				r.Delete("/{id}", h.deleteCustomRole)
			})
		})
	}
	return r
}

// writeAccessError renders middleware rejections as JSON error envelopes.
func writeAccessError(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, rbac.ErrForbidden) {
		core.JSONError(w, core.ErrForbidden)
		return
	}
	core.JSONError(w, core.ErrUnauthorized)
}

func requirePrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rbac.PrincipalFromContext(r.Context()) == nil {
			core.JSONError(w, core.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// principalKey rate limits per principal, falling back to the client address.
func principalKey(r *http.Request) (string, error) {
	if p := rbac.PrincipalFromContext(r.Context()); p != nil {
		return "user:" + p.ID, nil
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr, nil
	}
	return "ip:" + host, nil
}
