package services

import (
	"fmt"

	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// RequireRole is the single authorization gate: it passes iff the user's
// role set intersects the allowed set. It must only be called with a user
// returned by RequireAuthenticated — authorization is meaningless for an
// unverified identity.
func RequireRole(user *domain.User, allowed ...domain.Role) error {
	if user == nil {
		return apperrors.ErrNotAuthenticated
	}
	if user.HasAnyRole(allowed...) {
		return nil
	}
	return fmt.Errorf("%w: no authorization", apperrors.ErrForbidden)
}

// ModeratorRoles is the allowed set for moderation operations.
var ModeratorRoles = []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}

// SuperAdminOnly is the allowed set for role reassignment and hard deletion.
var SuperAdminOnly = []domain.Role{domain.RoleSuperAdmin}
