package customrole_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/posaccess/pkg/customrole"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

var (
	admin      = &rbac.Principal{ID: "admin-1", Role: rbac.RoleAdmin}
	supervisor = &rbac.Principal{
		ID:          "sup-1",
		Role:        rbac.RoleSupervisor,
		Permissions: []rbac.Permission{rbac.PermRoleManage},
	}
)

func newService(t *testing.T) *customrole.Service {
	t.Helper()
	clock := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	return customrole.NewService(customrole.NewMemoryStore(), rbac.NewEvaluator(rbac.Default()),
		customrole.WithClock(func() time.Time { return clock }),
	)
}

func intPtr(v int) *int { return &v }

func TestService_CreateFromTemplate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("template seeds permissions and hierarchy", func(t *testing.T) {
		svc := newService(t)
		role, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{
			Name:        "  Morning till ",
			TemplateID:  "front_cashier",
			Permissions: []string{"report.view", "pos.access"},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, role.ID)
		assert.Equal(t, "Morning till", role.Name)
		assert.Equal(t, 40, role.Hierarchy)
		assert.Equal(t, "admin-1", role.CreatedBy)
		assert.Equal(t, []rbac.Permission{
			rbac.PermPOSAccess, rbac.PermPOSDiscount, rbac.PermProductView,
			rbac.PermCustomerView, rbac.PermCustomerCreate, rbac.PermReportView,
		}, role.Permissions)

		stored, err := svc.Get(ctx, role.ID)
		require.NoError(t, err)
		assert.Equal(t, role, stored)
	})

	t.Run("without template", func(t *testing.T) {
		svc := newService(t)
		role, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{
			Name:        "Stock counter",
			Hierarchy:   intPtr(25),
			Permissions: []string{"inventory.*"},
		})
		require.NoError(t, err)
		assert.Equal(t, 25, role.Hierarchy)
		assert.Equal(t, []rbac.Permission{
			rbac.PermInventoryView, rbac.PermInventoryManage, rbac.PermInventoryAdjust,
			rbac.PermInventoryReceive, rbac.PermInventoryTransfer,
		}, role.Permissions)
	})

	tests := []struct {
		name    string
		actor   *rbac.Principal
		input   customrole.CreateInput
		wantErr error
	}{
		{
			name:    "missing actor",
			input:   customrole.CreateInput{Name: "x"},
			wantErr: customrole.ErrUnauthenticated,
		},
		{
			name:    "name too short",
			actor:   admin,
			input:   customrole.CreateInput{Name: "x"},
			wantErr: customrole.ErrInvalidInput,
		},
		{
			name:    "blank name",
			actor:   admin,
			input:   customrole.CreateInput{Name: "     "},
			wantErr: customrole.ErrInvalidInput,
		},
		{
			name:    "name short once trimmed",
			actor:   admin,
			input:   customrole.CreateInput{Name: "  x  "},
			wantErr: customrole.ErrInvalidInput,
		},
		{
			name:    "negative hierarchy",
			actor:   admin,
			input:   customrole.CreateInput{Name: "Negative", Hierarchy: intPtr(-1)},
			wantErr: customrole.ErrInvalidInput,
		},
		{
			name:    "unknown template",
			actor:   admin,
			input:   customrole.CreateInput{Name: "Ghost", TemplateID: "night_owl"},
			wantErr: customrole.ErrUnknownTemplate,
		},
		{
			name:    "unknown permission",
			actor:   admin,
			input:   customrole.CreateInput{Name: "Teleporter", Permissions: []string{"pos.teleport"}},
			wantErr: rbac.ErrInvalidToken,
		},
		{
			name:    "supervisor above own level",
			actor:   supervisor,
			input:   customrole.CreateInput{Name: "Boss", TemplateID: "store_manager"},
			wantErr: customrole.ErrHierarchyTooHigh,
		},
		{
			name:    "supervisor granting a permission it lacks",
			actor:   supervisor,
			input:   customrole.CreateInput{Name: "Exporter", Permissions: []string{"report.export"}},
			wantErr: customrole.ErrPermissionNotHeld,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(t).CreateFromTemplate(ctx, tt.actor, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("supervisor at own level", func(t *testing.T) {
		role, err := newService(t).CreateFromTemplate(ctx, supervisor, customrole.CreateInput{
			Name:       "Shift lead",
			TemplateID: "shift_supervisor",
		})
		require.NoError(t, err)
		assert.Equal(t, 60, role.Hierarchy)
	})
}

func TestService_ToggleCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	role, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{Name: "Counter", TemplateID: "front_cashier"})
	require.NoError(t, err)

	role, err = svc.ToggleCategory(ctx, admin, role.ID, "inventory", true)
	require.NoError(t, err)
	assert.Subset(t, role.Permissions, []rbac.Permission{
		rbac.PermInventoryView, rbac.PermInventoryManage, rbac.PermInventoryAdjust,
		rbac.PermInventoryReceive, rbac.PermInventoryTransfer,
	})
	assert.Contains(t, role.Permissions, rbac.PermPOSAccess)

	role, err = svc.ToggleCategory(ctx, admin, role.ID, "pos", false)
	require.NoError(t, err)
	assert.NotContains(t, role.Permissions, rbac.PermPOSAccess)
	assert.NotContains(t, role.Permissions, rbac.PermPOSDiscount)
	assert.Contains(t, role.Permissions, rbac.PermInventoryView)

	again, err := svc.ToggleCategory(ctx, admin, role.ID, "pos", false)
	require.NoError(t, err)
	assert.Equal(t, role.Permissions, again.Permissions, "disabling twice is a no-op")

	_, err = svc.ToggleCategory(ctx, admin, role.ID, "loyalty", true)
	assert.ErrorIs(t, err, customrole.ErrUnknownCategory)

	_, err = svc.ToggleCategory(ctx, admin, "missing", "pos", true)
	assert.ErrorIs(t, err, customrole.ErrNotFound)

	_, err = svc.ToggleCategory(ctx, supervisor, role.ID, "settings", true)
	assert.ErrorIs(t, err, customrole.ErrPermissionNotHeld)
}

func TestService_SetPermissionsAndUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	role, err := svc.CreateFromTemplate(ctx, supervisor, customrole.CreateInput{Name: "Floor", TemplateID: "floor_server"})
	require.NoError(t, err)

	role, err = svc.SetPermissions(ctx, supervisor, role.ID, []string{"table.*", "order.view"})
	require.NoError(t, err)
	assert.Equal(t, []rbac.Permission{rbac.PermOrderView, rbac.PermTableView, rbac.PermTableAssign}, role.Permissions)

	_, err = svc.SetPermissions(ctx, supervisor, role.ID, []string{"nope"})
	assert.ErrorIs(t, err, customrole.ErrInvalidInput)

	role, err = svc.Update(ctx, supervisor, role.ID, customrole.UpdateInput{
		Name:        ptr("Floor lead"),
		Description: ptr("Runs the floor"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Floor lead", role.Name)
	assert.Equal(t, "Runs the floor", role.Description)

	_, err = svc.Update(ctx, supervisor, role.ID, customrole.UpdateInput{Hierarchy: intPtr(90)})
	assert.ErrorIs(t, err, customrole.ErrHierarchyTooHigh)

	_, err = svc.Update(ctx, supervisor, role.ID, customrole.UpdateInput{Name: ptr("x")})
	assert.ErrorIs(t, err, customrole.ErrInvalidInput)

	for _, name := range []string{"", "   "} {
		_, err = svc.Update(ctx, supervisor, role.ID, customrole.UpdateInput{Name: ptr(name)})
		assert.ErrorIs(t, err, customrole.ErrInvalidInput, "name %q", name)
	}
	stored, err := svc.Get(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, "Floor lead", stored.Name)
}

func TestService_NarrowingNeedsOnlyAddedPermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	role, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{
		Name:        "Night audit",
		Hierarchy:   intPtr(50),
		Permissions: []string{"pos.access", "report.view", "report.export"},
	})
	require.NoError(t, err)

	role, err = svc.Update(ctx, supervisor, role.ID, customrole.UpdateInput{Name: ptr("Night desk")})
	require.NoError(t, err, "renaming does not re-check held permissions")
	assert.Equal(t, "Night desk", role.Name)

	role, err = svc.ToggleCategory(ctx, supervisor, role.ID, "pos", false)
	require.NoError(t, err)
	assert.Equal(t, []rbac.Permission{rbac.PermReportView, rbac.PermReportExport}, role.Permissions)

	role, err = svc.SetPermissions(ctx, supervisor, role.ID, []string{"report.view"})
	require.NoError(t, err)
	assert.Equal(t, []rbac.Permission{rbac.PermReportView}, role.Permissions)

	_, err = svc.SetPermissions(ctx, supervisor, role.ID, []string{"report.view", "report.export"})
	assert.ErrorIs(t, err, customrole.ErrPermissionNotHeld, "re-adding still needs the permission")
}

func TestService_ListAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newService(t)

	high, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{Name: "Regional", Hierarchy: intPtr(90)})
	require.NoError(t, err)
	low, err := svc.CreateFromTemplate(ctx, admin, customrole.CreateInput{Name: "Trainee", Hierarchy: intPtr(5)})
	require.NoError(t, err)

	roles, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)

	assert.ErrorIs(t, svc.Delete(ctx, supervisor, high.ID), customrole.ErrHierarchyTooHigh)
	assert.ErrorIs(t, svc.Delete(ctx, nil, low.ID), customrole.ErrUnauthenticated)
	require.NoError(t, svc.Delete(ctx, supervisor, low.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, low.ID), customrole.ErrNotFound)

	roles, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, high.ID, roles[0].ID)
}

func ptr[T any](v T) *T { return &v }
