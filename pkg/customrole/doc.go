// Package customrole manages operator-defined roles built from catalog
// templates and permission categories.
//
// A CustomRole is a named permission set with a hierarchy level. Roles are
// usually seeded from an rbac.RoleTemplate, then tuned by switching whole
// permission categories on or off or by replacing the permission list:
//
//	svc := customrole.NewService(store, evaluator, customrole.WithLogger(log))
//	role, err := svc.CreateFromTemplate(ctx, actor, customrole.CreateInput{
//	    Name:       "Morning till",
//	    TemplateID: "front_cashier",
//	    Permissions: []string{"report.view"},
//	})
//	role, err = svc.ToggleCategory(ctx, actor, role.ID, "inventory", true)
//
// Non-admin actors cannot create roles above their own hierarchy level and
// cannot grant permissions they do not hold themselves.
//
// Store has three implementations: MemoryStore, RedisStore (JSON documents
// keyed by id) and PostgresStore (custom_roles table, see Migrations).
package customrole
