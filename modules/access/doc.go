// Package access exposes the permission catalog, caller checks and custom
// role administration over HTTP.
//
//	r := chi.NewRouter()
//	r.Mount("/v1", access.Router(access.Options{
//	    Evaluator: evaluator,
//	    Verifier:  verifier,
//	    Roles:     customrole.NewService(store, evaluator),
//	    Logger:    log,
//	}))
//
// Catalog routes are public. /me and /check need a bearer token. Custom role
// routes need role.view to read and role.manage to write.
package access
