package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliotrack/solar-installations/internal/httperr"
)

func TestHasPermissionDeniesMissingPrincipal(t *testing.T) {
	err := HasPermission(nil, PermViewInstallations)
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Authentication required", err.Error())
}

func TestHasPermissionDeniesUnknownRole(t *testing.T) {
	principal := &Claims{Role: "superuser"}

	err := HasPermission(principal, PermViewInstallations)
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Invalid role", err.Error())
}

func TestHasPermissionDeniesTechnicianCreate(t *testing.T) {
	principal := &Claims{Role: string(RoleTechnician)}

	err := HasPermission(principal, PermCreateInstallation)
	require.Error(t, err)

	status, ok := httperr.StatusOf(err)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "User has no permission", err.Error())
}

func TestHasPermissionAllowsGrantedPermissions(t *testing.T) {
	admin := &Claims{Role: string(RoleAdmin)}
	require.NoError(t, HasPermission(admin, PermViewInstallations))
	require.NoError(t, HasPermission(admin, PermCreateInstallation))

	tech := &Claims{Role: string(RoleTechnician)}
	require.NoError(t, HasPermission(tech, PermViewInstallations))
}
