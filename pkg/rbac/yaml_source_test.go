package rbac_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/posaccess/pkg/rbac"
)

const catalogYAML = `
permissions: [till.open, till.close, report.view]
roles:
  - role: admin
    name: Owner
    hierarchy: 100
  - role: clerk
    name: Clerk
    hierarchy: 10
    permissions: [till.open]
templates:
  - id: closer
    name: Closer
    category: tills
    icon: moon
    hierarchy: 12
    permissions: [till.open, till.close]
categories:
  - id: tills
    name: Tills
    permissions: [till.open, till.close]
  - id: reports
    name: Reports
    permissions: [report.view]
`

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	t.Run("builds a catalog", func(t *testing.T) {
		catalog, err := rbac.NewCatalog(context.Background(), rbac.YAMLSource(strings.NewReader(catalogYAML)))
		require.NoError(t, err)

		eval := rbac.NewEvaluator(catalog)
		clerk := &rbac.Principal{Role: "clerk"}
		assert.True(t, eval.HasPermission(clerk, "till.open"))
		assert.False(t, eval.HasPermission(clerk, "till.close"))
		assert.True(t, eval.HasPermission(&rbac.Principal{Role: rbac.RoleAdmin}, "report.view"))
		assert.Equal(t, []rbac.Permission{"till.open", "till.close", "report.view"}, catalog.PermissionsForRole(rbac.RoleAdmin))

		tpl, ok := catalog.Template("closer")
		require.True(t, ok)
		assert.Equal(t, "moon", tpl.Icon)
		assert.Equal(t, 12, tpl.Hierarchy)

		info, ok := catalog.RoleInfo(rbac.RoleAdmin)
		require.True(t, ok)
		assert.Equal(t, "Owner", info.Name)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		_, err := rbac.NewCatalog(context.Background(), rbac.YAMLSource(strings.NewReader("permisions: [a.b]\n")))
		assert.ErrorIs(t, err, rbac.ErrCatalogSource)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := rbac.NewCatalog(context.Background(), rbac.YAMLSource(strings.NewReader("roles: {")))
		assert.ErrorIs(t, err, rbac.ErrCatalogSource)
	})
}
