package customrole

import "errors"

var (
	ErrNotFound          = errors.New("customrole: not found")
	ErrDuplicateID       = errors.New("customrole: duplicate id")
	ErrInvalidInput      = errors.New("customrole: invalid input")
	ErrUnknownTemplate   = errors.New("customrole: unknown template")
	ErrUnknownCategory   = errors.New("customrole: unknown permission category")
	ErrHierarchyTooHigh  = errors.New("customrole: hierarchy above the actor's own level")
	ErrPermissionNotHeld = errors.New("customrole: actor cannot grant a permission it does not hold")
	ErrUnauthenticated   = errors.New("customrole: missing actor")
)
