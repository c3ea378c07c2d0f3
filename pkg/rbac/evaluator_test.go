package rbac_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/posaccess/pkg/rbac"
)

func newEvaluator(t *testing.T) *rbac.Evaluator {
	t.Helper()
	catalog, err := rbac.NewCatalog(context.Background(), rbac.BuiltinSource())
	require.NoError(t, err)
	return rbac.NewEvaluator(catalog)
}

func TestEvaluator_AdminUniversality(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	admin := &rbac.Principal{Role: rbac.RoleAdmin}

	for _, p := range rbac.AllPermissions() {
		assert.True(t, eval.HasPermission(admin, p), "admin missing %s", p)
	}
	assert.ElementsMatch(t, rbac.AllPermissions(), eval.UserPermissions(admin))
	assert.True(t, eval.HasPermission(admin, rbac.Permission("not.in.vocabulary")))
}

func TestEvaluator_AdminGrowsWithVocabulary(t *testing.T) {
	t.Parallel()
	data := syntheticData()
	data.Permissions = append(data.Permissions, "loyalty.redeem")
	catalog, err := rbac.NewCatalog(context.Background(), rbac.NewInMemSource(data))
	require.NoError(t, err)

	assert.Contains(t, catalog.PermissionsForRole(rbac.RoleAdmin), rbac.Permission("loyalty.redeem"))
	assert.Equal(t, catalog.Permissions(), catalog.PermissionsForRole(rbac.RoleAdmin))
}

func TestEvaluator_HasPermission(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)

	tests := []struct {
		name       string
		user       *rbac.Principal
		permission rbac.Permission
		want       bool
	}{
		{
			name:       "nil principal",
			user:       nil,
			permission: rbac.PermPOSAccess,
			want:       false,
		},
		{
			name:       "role default",
			user:       &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{}},
			permission: rbac.PermPOSAccess,
			want:       true,
		},
		{
			name:       "not in role",
			user:       &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{}},
			permission: rbac.PermInventoryManage,
			want:       false,
		},
		{
			name:       "explicit override",
			user:       &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{rbac.PermInventoryManage}},
			permission: rbac.PermInventoryManage,
			want:       true,
		},
		{
			name:       "secondary role does not grant permissions",
			user:       &rbac.Principal{Role: rbac.RoleCashier, Roles: []rbac.Role{rbac.RoleManager}},
			permission: rbac.PermReportFinancial,
			want:       false,
		},
		{
			name:       "unknown role",
			user:       &rbac.Principal{Role: "barista"},
			permission: rbac.PermPOSAccess,
			want:       false,
		},
		{
			name:       "unknown permission",
			user:       &rbac.Principal{Role: rbac.RoleManager},
			permission: "pos.teleport",
			want:       false,
		},
		{
			name:       "empty principal",
			user:       &rbac.Principal{},
			permission: rbac.PermDashboardView,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eval.HasPermission(tt.user, tt.permission))
		})
	}
}

func TestEvaluator_HasAnyPermission(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	cashier := &rbac.Principal{Role: rbac.RoleCashier}

	assert.True(t, eval.HasAnyPermission(cashier, rbac.PermInventoryManage, rbac.PermPOSAccess))
	assert.False(t, eval.HasAnyPermission(cashier, rbac.PermInventoryManage, rbac.PermUserDelete))
	assert.False(t, eval.HasAnyPermission(cashier), "empty query must not be satisfied")
	assert.False(t, eval.HasAnyPermission(cashier, []rbac.Permission{}...))
	assert.False(t, eval.HasAnyPermission(nil, rbac.PermPOSAccess))
}

func TestEvaluator_HasAllPermissions(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	cashier := &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{rbac.PermPOSRefund}}

	assert.True(t, eval.HasAllPermissions(cashier, rbac.PermPOSAccess, rbac.PermPOSRefund))
	assert.False(t, eval.HasAllPermissions(cashier, rbac.PermPOSAccess, rbac.PermPOSVoid))
	assert.False(t, eval.HasAllPermissions(cashier), "empty query must not be satisfied")
	assert.False(t, eval.HasAllPermissions(&rbac.Principal{Role: rbac.RoleAdmin}))
	assert.False(t, eval.HasAllPermissions(nil, rbac.PermPOSAccess))
}

func TestEvaluator_Roles(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	user := &rbac.Principal{Role: rbac.RoleCashier, Roles: []rbac.Role{rbac.RoleManager}}

	t.Run("primary role", func(t *testing.T) {
		assert.True(t, eval.HasRole(user, rbac.RoleCashier))
	})

	t.Run("secondary role", func(t *testing.T) {
		assert.True(t, eval.HasRole(user, rbac.RoleManager))
	})

	t.Run("missing role", func(t *testing.T) {
		assert.False(t, eval.HasRole(user, rbac.RoleInventoryManager))
		assert.False(t, eval.HasRole(nil, rbac.RoleCashier))
	})

	t.Run("any role", func(t *testing.T) {
		assert.True(t, eval.HasAnyRole(user, rbac.RoleViewer, rbac.RoleManager))
		assert.False(t, eval.HasAnyRole(user, rbac.RoleViewer, rbac.RoleWaiter))
		assert.False(t, eval.HasAnyRole(user))
		assert.False(t, eval.HasAnyRole(nil, rbac.RoleCashier))
	})

	t.Run("all roles", func(t *testing.T) {
		assert.True(t, eval.HasAllRoles(user, rbac.RoleCashier, rbac.RoleManager))
		assert.False(t, eval.HasAllRoles(user, rbac.RoleCashier, rbac.RoleAdmin))
		assert.False(t, eval.HasAllRoles(user))
		assert.False(t, eval.HasAllRoles(nil, rbac.RoleCashier))
	})
}

func TestEvaluator_HasMinimumRole(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	catalog := eval.Catalog()

	t.Run("waiter below cashier", func(t *testing.T) {
		require.Equal(t, 20, catalog.HierarchyLevel(rbac.RoleWaiter))
		require.Equal(t, 40, catalog.HierarchyLevel(rbac.RoleCashier))
		assert.False(t, eval.HasMinimumRole(&rbac.Principal{Role: rbac.RoleWaiter}, rbac.RoleCashier))
		assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: rbac.RoleCashier}, rbac.RoleWaiter))
	})

	t.Run("shared level", func(t *testing.T) {
		assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: rbac.RoleWaitress}, rbac.RoleWaiter))
		assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: rbac.RoleWaiter}, rbac.RoleWaitress))
	})

	t.Run("monotonic over every pair", func(t *testing.T) {
		for _, r1 := range rbac.AllRoles() {
			for _, r2 := range rbac.AllRoles() {
				if catalog.HierarchyLevel(r1) >= catalog.HierarchyLevel(r2) {
					assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: r1}, r2), "%s >= %s", r1, r2)
				}
			}
		}
	})

	t.Run("unknown roles sit at zero", func(t *testing.T) {
		assert.Equal(t, 0, catalog.HierarchyLevel("barista"))
		assert.False(t, eval.HasMinimumRole(&rbac.Principal{Role: "barista"}, rbac.RoleViewer))
		assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: rbac.RoleViewer}, "barista"))
	})

	t.Run("nil principal", func(t *testing.T) {
		assert.False(t, eval.HasMinimumRole(nil, rbac.RoleViewer))
	})
}

func TestEvaluator_UserPermissions(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)

	t.Run("nil principal", func(t *testing.T) {
		perms := eval.UserPermissions(nil)
		assert.NotNil(t, perms)
		assert.Empty(t, perms)
	})

	t.Run("union with overrides deduplicated", func(t *testing.T) {
		user := &rbac.Principal{
			Role:        rbac.RoleCashier,
			Permissions: []rbac.Permission{rbac.PermInventoryManage, rbac.PermPOSAccess, rbac.PermInventoryManage},
		}
		assert.Equal(t, []rbac.Permission{
			rbac.PermPOSAccess,
			rbac.PermProductView,
			rbac.PermInventoryManage,
			rbac.PermCustomerView,
			rbac.PermCustomerCreate,
		}, eval.UserPermissions(user))
	})

	t.Run("overrides outside the vocabulary are kept last", func(t *testing.T) {
		user := &rbac.Principal{Role: rbac.RoleViewer, Permissions: []rbac.Permission{"legacy.flag"}}
		assert.Equal(t, []rbac.Permission{rbac.PermProductView, rbac.PermDashboardView, "legacy.flag"}, eval.UserPermissions(user))
	})

	t.Run("idempotent", func(t *testing.T) {
		user := &rbac.Principal{Role: rbac.RoleSupervisor, Permissions: []rbac.Permission{rbac.PermReportExport}}
		first := eval.UserPermissions(user)
		second := eval.UserPermissions(user)
		assert.Equal(t, first, second)
	})

	t.Run("result is a copy", func(t *testing.T) {
		user := &rbac.Principal{Role: rbac.RoleCashier}
		perms := eval.UserPermissions(user)
		perms[0] = "mutated"
		assert.True(t, eval.HasPermission(user, rbac.PermPOSAccess))
	})
}

func TestEvaluator_Shortcuts(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)

	assert.True(t, eval.IsAdmin(&rbac.Principal{Role: rbac.RoleAdmin}))
	assert.False(t, eval.IsAdmin(&rbac.Principal{Role: rbac.RoleManager}))
	assert.False(t, eval.IsAdmin(&rbac.Principal{Role: rbac.RoleCashier, Roles: []rbac.Role{rbac.RoleAdmin}}))
	assert.False(t, eval.IsAdmin(nil))

	assert.True(t, eval.IsManagerOrAbove(&rbac.Principal{Role: rbac.RoleAdmin}))
	assert.True(t, eval.IsManagerOrAbove(&rbac.Principal{Role: rbac.RoleManager}))
	assert.False(t, eval.IsManagerOrAbove(&rbac.Principal{Role: rbac.RoleSupervisor}))
	assert.False(t, eval.IsManagerOrAbove(nil))
}

func TestEvaluator_CanAssignRole(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)
	manager := &rbac.Principal{Role: rbac.RoleManager}

	assert.True(t, eval.CanAssignRole(manager, rbac.RoleCashier))
	assert.False(t, eval.CanAssignRole(manager, rbac.RoleManager), "peers cannot assign their own level")
	assert.False(t, eval.CanAssignRole(manager, rbac.RoleAdmin))
	assert.True(t, eval.CanAssignRole(&rbac.Principal{Role: rbac.RoleAdmin}, rbac.RoleAdmin))
	assert.False(t, eval.CanAssignRole(&rbac.Principal{Role: rbac.RoleSupervisor}, rbac.RoleCashier), "no role.assign")
	assert.True(t, eval.CanAssignRole(&rbac.Principal{
		Role:        rbac.RoleSupervisor,
		Permissions: []rbac.Permission{rbac.PermRoleAssign},
	}, rbac.RoleCashier))
	assert.False(t, eval.CanAssignRole(manager, "barista"))
	assert.False(t, eval.CanAssignRole(nil, rbac.RoleViewer))
}

func TestEvaluator_Scenarios(t *testing.T) {
	t.Parallel()
	eval := newEvaluator(t)

	t.Run("cashier without overrides", func(t *testing.T) {
		assert.ElementsMatch(t, []rbac.Permission{
			rbac.PermPOSAccess, rbac.PermProductView, rbac.PermCustomerView, rbac.PermCustomerCreate,
		}, eval.Catalog().PermissionsForRole(rbac.RoleCashier))

		user := &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{}}
		assert.True(t, eval.HasPermission(user, "pos.access"))
		assert.False(t, eval.HasPermission(user, "inventory.manage"))
	})

	t.Run("cashier with inventory override", func(t *testing.T) {
		user := &rbac.Principal{Role: rbac.RoleCashier, Permissions: []rbac.Permission{"inventory.manage"}}
		assert.True(t, eval.HasPermission(user, "inventory.manage"))
		assert.False(t, eval.HasRole(user, "inventory_manager"))
	})

	t.Run("waiter versus cashier", func(t *testing.T) {
		assert.False(t, eval.HasMinimumRole(&rbac.Principal{Role: "waiter"}, "cashier"))
		assert.True(t, eval.HasMinimumRole(&rbac.Principal{Role: "cashier"}, "waiter"))
	})
}

func TestNewEvaluator_NilCatalogUsesDefault(t *testing.T) {
	t.Parallel()
	eval := rbac.NewEvaluator(nil)
	assert.Same(t, rbac.Default(), eval.Catalog())
	assert.True(t, eval.HasPermission(&rbac.Principal{Role: rbac.RoleCashier}, rbac.PermPOSAccess))
}
