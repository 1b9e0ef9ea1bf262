package auth

import (
	"net/http"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

// Role is a named bundle of permissions assigned to a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

// Permission is an atomic capability token.
type Permission string

const (
	PermCreateInstallation Permission = "create_installation"
	PermViewInstallations  Permission = "view_installations"
)

// rolePermissions maps each role to its granted permissions. The table is
// fixed at startup and never mutated; adding a role means adding a row here.
var rolePermissions = map[Role][]Permission{
	RoleAdmin:      {PermCreateInstallation, PermViewInstallations},
	RoleTechnician: {PermViewInstallations},
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// HasPermission checks whether the authenticated principal may exercise perm.
// It returns a 401 error when no principal is present, a 403 "Invalid role"
// error when the principal's role is outside the role enumeration, and a 403
// "User has no permission" error when the role's grant excludes perm.
func HasPermission(principal *Claims, perm Permission) error {
	if principal == nil {
		return httperr.New(http.StatusUnauthorized, "Authentication required")
	}

	role := Role(principal.Role)
	if !role.Valid() {
		return httperr.New(http.StatusForbidden, "Invalid role")
	}

	for _, p := range rolePermissions[role] {
		if p == perm {
			return nil
		}
	}
	return httperr.New(http.StatusForbidden, "User has no permission")
}
