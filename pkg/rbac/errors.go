package rbac

import "errors"

// Domain errors for RBAC operations. The evaluator never returns them; they
// surface at construction, parsing and middleware boundaries.
var (
	// ErrInvalidToken is returned when a role or permission value is not in the vocabulary.
	ErrInvalidToken = errors.New("rbac.invalid_token")

	// ErrDuplicateID is returned when a catalog declares the same identifier twice.
	ErrDuplicateID = errors.New("rbac.duplicate_id")

	// ErrInvalidHierarchy is returned for negative hierarchy levels.
	ErrInvalidHierarchy = errors.New("rbac.invalid_hierarchy")

	// ErrMissingAdminRole is returned when a catalog source does not declare the admin role.
	ErrMissingAdminRole = errors.New("rbac.missing_admin_role")

	// ErrCatalogSource is returned when a catalog source fails to load.
	ErrCatalogSource = errors.New("rbac.catalog_source")

	// ErrUnauthenticated is passed to a middleware ErrorHandler when the request carries no principal.
	ErrUnauthenticated = errors.New("rbac.unauthenticated")

	// ErrForbidden is passed to a middleware ErrorHandler when the evaluator denies the request.
	ErrForbidden = errors.New("rbac.forbidden")
)
