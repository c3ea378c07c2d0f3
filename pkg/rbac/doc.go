// Package rbac provides role-based access control for the point-of-sale client
// and its backend. It answers one question: is this principal allowed to do X.
//
// The package is split into three layers:
//
//   - Vocabulary: the closed sets of Permission and Role tokens and the
//     hierarchy level of every role.
//   - Catalog: an immutable value mapping each role to its default
//     permissions, plus role templates and permission categories used when
//     authoring custom roles.
//   - Evaluator: pure, fail-closed checks over a Principal snapshot.
//
// Key rules:
//
//   - The admin role always holds the full permission universe. The catalog
//     computes it at construction, so new permissions never need a catalog edit.
//   - Explicit principal-level permissions are checked before role defaults.
//   - A nil principal, an unknown token or an empty query is never granted.
//
// Basic usage:
//
//	catalog := rbac.Default()
//	eval := rbac.NewEvaluator(catalog)
//
//	user := &rbac.Principal{
//	    ID:          "u-42",
//	    Role:        rbac.RoleCashier,
//	    Permissions: []rbac.Permission{rbac.PermInventoryManage},
//	}
//
//	eval.HasPermission(user, rbac.PermPOSAccess)          // true, role default
//	eval.HasPermission(user, rbac.PermInventoryManage)    // true, explicit override
//	eval.HasMinimumRole(user, rbac.RoleManager)           // false
//
// Synthetic catalogs for tests or per-deployment overrides can be built from
// any CatalogSource, for example a YAML document:
//
//	catalog, err := rbac.NewCatalog(ctx, rbac.YAMLSource(file))
//
// HTTP handlers are protected with Middleware, which reads the principal
// stored in the request context by WithPrincipal:
//
//	mw := rbac.Middleware{Evaluator: eval, Logger: log}
//	r.With(mw.RequirePermission(rbac.PermReportView)).Get("/reports", h)
package rbac
