package customrole

import (
	"cmp"
	"context"
	"slices"
)

// Store persists custom roles.
//
// Create fails with ErrDuplicateID when the id exists. Get, Update and
// Delete fail with ErrNotFound for unknown ids. List returns roles oldest
// first.
type Store interface {
	Create(ctx context.Context, role CustomRole) error
	Get(ctx context.Context, id string) (CustomRole, error)
	List(ctx context.Context) ([]CustomRole, error)
	Update(ctx context.Context, role CustomRole) error
	Delete(ctx context.Context, id string) error
}

func sortRoles(roles []CustomRole) {
	slices.SortFunc(roles, func(a, b CustomRole) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
