package customrole

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillpoint/posaccess/pkg/pg"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migrations for the custom_roles table.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// PostgresStore keeps roles in the custom_roles table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a store over pool. Apply Migrations first.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const selectColumns = `id, name, description, template_id, hierarchy, permissions, created_by, created_at, updated_at`

// Create inserts role, mapping a primary key conflict to ErrDuplicateID.
func (s *PostgresStore) Create(ctx context.Context, role CustomRole) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO custom_roles (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		role.ID, role.Name, role.Description, role.TemplateID, role.Hierarchy,
		permissionStrings(role.Permissions), role.CreatedBy, role.CreatedAt, role.UpdatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("customrole: create %s: %w", role.ID, err)
	}
	return nil
}

// Get returns the role with id, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id string) (CustomRole, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM custom_roles WHERE id = $1`, id)
	role, err := scanRole(row)
	if pg.IsNotFoundError(err) {
		return CustomRole{}, ErrNotFound
	}
	if err != nil {
		return CustomRole{}, fmt.Errorf("customrole: get %s: %w", id, err)
	}
	return role, nil
}

// List returns every role ordered by created_at, then id.
func (s *PostgresStore) List(ctx context.Context) ([]CustomRole, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+selectColumns+` FROM custom_roles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("customrole: list: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (CustomRole, error) {
		return scanRole(row)
	})
	if err != nil {
		return nil, fmt.Errorf("customrole: list: %w", err)
	}
	return out, nil
}

// Update rewrites an existing row, or fails with ErrNotFound.
func (s *PostgresStore) Update(ctx context.Context, role CustomRole) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE custom_roles
		SET name = $2, description = $3, template_id = $4, hierarchy = $5, permissions = $6, updated_at = $7
		WHERE id = $1`,
		role.ID, role.Name, role.Description, role.TemplateID, role.Hierarchy,
		permissionStrings(role.Permissions), role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("customrole: update %s: %w", role.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with id, or fails with ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM custom_roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("customrole: delete %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRole(row pgx.Row) (CustomRole, error) {
	var (
		role  CustomRole
		perms []string
	)
	err := row.Scan(&role.ID, &role.Name, &role.Description, &role.TemplateID, &role.Hierarchy,
		&perms, &role.CreatedBy, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return CustomRole{}, err
	}
	role.Permissions = make([]rbac.Permission, len(perms))
	for i, p := range perms {
		role.Permissions[i] = rbac.Permission(p)
	}
	return role, nil
}

func permissionStrings(perms []rbac.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
