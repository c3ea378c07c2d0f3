package customrole

import (
	"slices"
	"strings"
	"time"

	"github.com/tillpoint/posaccess/pkg/rbac"
)

// CustomRole is an operator-defined permission set.
type CustomRole struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	TemplateID  string            `json:"template_id,omitempty"`
	Hierarchy   int               `json:"hierarchy"`
	Permissions []rbac.Permission `json:"permissions"`
	CreatedBy   string            `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (r CustomRole) clone() CustomRole {
	r.Permissions = slices.Clone(r.Permissions)
	return r
}

// CreateInput describes a new role. Permissions accepts exact tokens and
// wildcard patterns and is merged with the template's permissions.
// Text fields are trimmed before validation.
// A nil Hierarchy inherits the template level, or 0 without a template.
type CreateInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=64"`
	Description string   `json:"description" validate:"max=256"`
	TemplateID  string   `json:"template_id" validate:"omitempty,max=64"`
	Hierarchy   *int     `json:"hierarchy" validate:"omitempty,min=0,max=1000"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required,max=64"`
}

func (in CreateInput) normalized() CreateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.TemplateID = strings.TrimSpace(in.TemplateID)
	return in
}

// UpdateInput changes role metadata. Nil fields are left as they are.
type UpdateInput struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=64"`
	Description *string `json:"description" validate:"omitnil,max=256"`
	Hierarchy   *int    `json:"hierarchy" validate:"omitnil,min=0,max=1000"`
}

func (in UpdateInput) normalized() UpdateInput {
	in.Name = trimmed(in.Name)
	in.Description = trimmed(in.Description)
	return in
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
