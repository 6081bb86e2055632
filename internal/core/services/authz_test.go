package services_test

import (
	"testing"

	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name    string
		roles   []domain.Role
		allowed []domain.Role
		wantErr error
	}{
		{
			name:    "client allowed when client is in the set",
			roles:   []domain.Role{domain.RoleClient},
			allowed: []domain.Role{domain.RoleClient, domain.RoleAdmin},
			wantErr: nil,
		},
		{
			name:    "client rejected by moderator set",
			roles:   []domain.Role{domain.RoleClient},
			allowed: services.ModeratorRoles,
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "admin passes moderator set",
			roles:   []domain.Role{domain.RoleAdmin},
			allowed: services.ModeratorRoles,
			wantErr: nil,
		},
		{
			name:    "superAdmin passes moderator set",
			roles:   []domain.Role{domain.RoleSuperAdmin},
			allowed: services.ModeratorRoles,
			wantErr: nil,
		},
		{
			name:    "admin rejected by superAdmin-only set",
			roles:   []domain.Role{domain.RoleAdmin},
			allowed: services.SuperAdminOnly,
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "any one matching role is enough",
			roles:   []domain.Role{domain.RoleClient, domain.RoleAdmin},
			allowed: services.SuperAdminOnly,
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "multi-role user passes on the matching role",
			roles:   []domain.Role{domain.RoleClient, domain.RoleSuperAdmin},
			allowed: services.SuperAdminOnly,
			wantErr: nil,
		},
		{
			name:    "empty role set rejected",
			roles:   nil,
			allowed: services.ModeratorRoles,
			wantErr: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{UserID: "user-1", Roles: tt.roles}
			err := services.RequireRole(user, tt.allowed...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequireRole_NilUser(t *testing.T) {
	err := services.RequireRole(nil, services.ModeratorRoles...)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}
