package services

import (
	"context"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users, newest first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// UpdatePersonalInformation replaces a user's profile block.
	UpdatePersonalInformation(ctx context.Context, userID string, req dto.UpdatePersonalInfoRequest) (*domain.User, error)

	// UpdateRoles replaces a user's role set. The new set must be non-empty
	// and drawn from the role enumeration.
	UpdateRoles(ctx context.Context, userID string, roles []string) (*domain.User, error)

	// CreateOAuthUser finds or creates a user from a verified OAuth identity.
	CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser permanently removes a user record.
	DeleteUser(ctx context.Context, userID string) (string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
