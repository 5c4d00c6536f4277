package nlquery

import (
	"strings"

	"github.com/google/uuid"
)

// Permission is a coarse capability derived from the caller's role.
type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
	PermissionAdmin  Permission = "admin"
)

// UserContext is the caller identity handed to the pipeline. It is built
// fresh per request from the authenticated session, never persisted here,
// and only used to scope query filters and gate what the caller sees.
type UserContext struct {
	UserId      uuid.UUID    `json:"user_id"`
	EmployeeId  *uuid.UUID   `json:"employee_id,omitempty"`
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// privilegedRoles are the admin-equivalent roles that are NOT subject to
// row-level ownership scoping. Role matching is case-insensitive.
var privilegedRoles = map[string]bool{
	"admin":         true,
	"administrator": true,
	"manager":       true,
}

// NewUserContext builds a context with permissions derived from the role.
func NewUserContext(userId uuid.UUID, employeeId *uuid.UUID, role string) *UserContext {
	return &UserContext{
		UserId:      userId,
		EmployeeId:  employeeId,
		Role:        role,
		Permissions: DerivePermissions(role),
	}
}

// AnonymousContext returns an unprivileged context for callers without a
// resolved identity (intent-preview only; query-explain requires identity).
func AnonymousContext() *UserContext {
	return NewUserContext(uuid.Nil, nil, "user")
}

// DerivePermissions maps a free-form role string to the permission set.
func DerivePermissions(role string) []Permission {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin", "administrator":
		return []Permission{PermissionRead, PermissionWrite, PermissionDelete, PermissionAdmin}
	case "manager":
		return []Permission{PermissionRead, PermissionWrite, PermissionDelete}
	default:
		return []Permission{PermissionRead, PermissionWrite}
	}
}

// Privileged reports whether the caller escapes ownership scoping.
func (u *UserContext) Privileged() bool {
	if u == nil {
		return false
	}
	return privilegedRoles[strings.ToLower(strings.TrimSpace(u.Role))]
}

// OwnerId returns the identifier ownership predicates bind to: the employee
// id when present, otherwise the user id.
func (u *UserContext) OwnerId() uuid.UUID {
	if u == nil {
		return uuid.Nil
	}
	if u.EmployeeId != nil && *u.EmployeeId != uuid.Nil {
		return *u.EmployeeId
	}
	return u.UserId
}
