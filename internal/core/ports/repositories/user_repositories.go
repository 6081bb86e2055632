package repositories

import (
	"context"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their (lower-cased) email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByResetToken retrieves the user holding a pending reset token.
	FindUserByResetToken(ctx context.Context, token string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by OAuth provider identity.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users, newest first.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details.
	UpdateUser(ctx context.Context, user domain.User) error

	// IncrementTokenVersion atomically bumps the user's token version and
	// returns the new value. Every previously issued token becomes stale.
	IncrementTokenVersion(ctx context.Context, userID string) (int64, error)

	// SetResetPasswordToken stores a pending reset token and its expiry.
	SetResetPasswordToken(ctx context.Context, userID string, token string, expiry time.Time) error

	// ResetPassword replaces the password hash and clears the reset fields.
	ResetPassword(ctx context.Context, userID string, passwordHash string) error

	// UpdateRoles replaces the user's role set.
	UpdateRoles(ctx context.Context, userID string, roles []domain.Role) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// DeleteUser permanently removes a user record.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
