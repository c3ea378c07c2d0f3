package customrole

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/rbac"
)

// Service applies catalog rules on top of a Store.
type Service struct {
	store     Store
	evaluator *rbac.Evaluator
	catalog   *rbac.Catalog
	validate  *validator.Validate
	log       *slog.Logger
	now       func() time.Time

	// serializes read-modify-write sequences against the store
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for role changes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService returns a Service. A nil evaluator uses the default catalog.
func NewService(store Store, evaluator *rbac.Evaluator, opts ...Option) *Service {
	if evaluator == nil {
		evaluator = rbac.NewEvaluator(nil)
	}
	s := &Service{
		store:     store,
		evaluator: evaluator,
		catalog:   evaluator.Catalog(),
		validate:  newValidator(),
		log:       slog.New(slog.DiscardHandler),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateFromTemplate creates a role seeded from in.TemplateID, if any, plus
// the expanded in.Permissions.
func (s *Service) CreateFromTemplate(ctx context.Context, actor *rbac.Principal, in CreateInput) (CustomRole, error) {
	if actor == nil {
		return CustomRole{}, ErrUnauthenticated
	}
	in = in.normalized()
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return CustomRole{}, errors.Join(ErrInvalidInput, err)
	}

	var (
		seed      []string
		hierarchy int
	)
	if in.TemplateID != "" {
		tpl, ok := s.catalog.Template(in.TemplateID)
		if !ok {
			return CustomRole{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, in.TemplateID)
		}
		hierarchy = tpl.Hierarchy
		for _, p := range tpl.Permissions {
			seed = append(seed, string(p))
		}
	}
	if in.Hierarchy != nil {
		hierarchy = *in.Hierarchy
	}

	perms, err := s.catalog.ExpandPermissions(append(seed, in.Permissions...)...)
	if err != nil {
		return CustomRole{}, errors.Join(ErrInvalidInput, err)
	}
	if err := s.authorize(actor, hierarchy, perms); err != nil {
		return CustomRole{}, err
	}

	now := s.now().UTC()
	role := CustomRole{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		TemplateID:  in.TemplateID,
		Hierarchy:   hierarchy,
		Permissions: perms,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, role); err != nil {
		return CustomRole{}, err
	}
	s.log.InfoContext(ctx, "custom role created",
		slog.String("custom_role_id", role.ID),
		slog.String("template_id", role.TemplateID),
		logger.UserID(actor.ID),
	)
	return role, nil
}

// Update changes name, description or hierarchy. Text fields are trimmed
// before validation, so a blank name is rejected.
func (s *Service) Update(ctx context.Context, actor *rbac.Principal, id string, in UpdateInput) (CustomRole, error) {
	in = in.normalized()
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return CustomRole{}, errors.Join(ErrInvalidInput, err)
	}
	return s.modify(ctx, actor, id, func(role *CustomRole) error {
		if in.Name != nil {
			role.Name = *in.Name
		}
		if in.Description != nil {
			role.Description = *in.Description
		}
		if in.Hierarchy != nil {
			role.Hierarchy = *in.Hierarchy
		}
		return nil
	})
}

// ToggleCategory grants every permission of a category when enabled is true
// and revokes them all otherwise. Non-admin actors must hold the permissions
// they add; revoking needs no such check.
func (s *Service) ToggleCategory(ctx context.Context, actor *rbac.Principal, id, categoryID string, enabled bool) (CustomRole, error) {
	category, ok := s.catalog.Category(categoryID)
	if !ok {
		return CustomRole{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	return s.modify(ctx, actor, id, func(role *CustomRole) error {
		if !enabled {
			role.Permissions = slices.DeleteFunc(role.Permissions, func(p rbac.Permission) bool {
				return slices.Contains(category.Permissions, p)
			})
			return nil
		}
		merged := make([]string, 0, len(role.Permissions)+len(category.Permissions))
		for _, p := range role.Permissions {
			merged = append(merged, string(p))
		}
		for _, p := range category.Permissions {
			merged = append(merged, string(p))
		}
		perms, err := s.catalog.ExpandPermissions(merged...)
		if err != nil {
			return errors.Join(ErrInvalidInput, err)
		}
		role.Permissions = perms
		return nil
	})
}

// SetPermissions replaces the role's permissions with the expansion of
// patterns. Non-admin actors must hold every permission that is added.
func (s *Service) SetPermissions(ctx context.Context, actor *rbac.Principal, id string, patterns []string) (CustomRole, error) {
	perms, err := s.catalog.ExpandPermissions(patterns...)
	if err != nil {
		return CustomRole{}, errors.Join(ErrInvalidInput, err)
	}
	return s.modify(ctx, actor, id, func(role *CustomRole) error {
		role.Permissions = perms
		return nil
	})
}

// Get returns the role with id or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (CustomRole, error) {
	return s.store.Get(ctx, id)
}

// List returns every role, oldest first.
func (s *Service) List(ctx context.Context) ([]CustomRole, error) {
	return s.store.List(ctx)
}

// Delete removes a role. Non-admin actors cannot delete roles above their level.
func (s *Service) Delete(ctx context.Context, actor *rbac.Principal, id string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(actor, role.Hierarchy, nil); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "custom role deleted", slog.String("custom_role_id", id), logger.UserID(actor.ID))
	return nil
}

// modify loads a role, applies change and stores the result. The actor must
// outrank both the old and the new hierarchy and hold every permission the
// change adds. Permissions already on the role are not re-checked, so a
// role can be renamed or narrowed by someone who lacks some of them.
func (s *Service) modify(ctx context.Context, actor *rbac.Principal, id string, change func(*CustomRole) error) (CustomRole, error) {
	if actor == nil {
		return CustomRole{}, ErrUnauthenticated
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	role, err := s.store.Get(ctx, id)
	if err != nil {
		return CustomRole{}, err
	}
	if err := s.authorize(actor, role.Hierarchy, nil); err != nil {
		return CustomRole{}, err
	}
	before := slices.Clone(role.Permissions)
	if err := change(&role); err != nil {
		return CustomRole{}, err
	}
	added := slices.DeleteFunc(slices.Clone(role.Permissions), func(p rbac.Permission) bool {
		return slices.Contains(before, p)
	})
	if err := s.authorize(actor, role.Hierarchy, added); err != nil {
		return CustomRole{}, err
	}

	role.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, role); err != nil {
		return CustomRole{}, err
	}
	s.log.InfoContext(ctx, "custom role updated", slog.String("custom_role_id", role.ID), logger.UserID(actor.ID))
	return role, nil
}

// authorize keeps non-admin actors from creating or editing roles that would
// outrank them or hold permissions they lack.
func (s *Service) authorize(actor *rbac.Principal, hierarchy int, perms []rbac.Permission) error {
	if s.evaluator.IsAdmin(actor) {
		return nil
	}
	if level := s.catalog.HierarchyLevel(actor.Role); hierarchy > level {
		return fmt.Errorf("%w: %d > %d", ErrHierarchyTooHigh, hierarchy, level)
	}
	for _, p := range perms {
		if !s.evaluator.HasPermission(actor, p) {
			return fmt.Errorf("%w: %s", ErrPermissionNotHeld, p)
		}
	}
	return nil
}
