package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portsrepo "github.com/petadminhq/pet_admin_app/internal/core/ports/repositories"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"github.com/petadminhq/pet_admin_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdatePersonalInformation(ctx context.Context, userID string, req dto.UpdatePersonalInfoRequest) (*domain.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrMissingInput)
	}
	if req.FirstName == "" {
		return nil, fmt.Errorf("%w: first name is required", apperrors.ErrMissingInput)
	}
	if req.LastName == "" {
		return nil, fmt.Errorf("%w: last name is required", apperrors.ErrMissingInput)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user for profile update: %w", err)
	}

	user.PersonalInformation = &domain.PersonalInformation{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthday:  req.Birthday,
		Gender:    req.Gender,
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update personal information: %w", err)
	}
	user.UpdatedAt = time.Now().UTC()
	return user, nil
}

func (s *userService) UpdateRoles(ctx context.Context, userID string, roles []string) (*domain.User, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", apperrors.ErrMissingInput)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: at least one role is required", apperrors.ErrMissingInput)
	}

	newRoles := make([]domain.Role, len(roles))
	for i, r := range roles {
		role := domain.Role(r)
		if !domain.ValidRole(role) {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, r)
		}
		newRoles[i] = role
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user for role update: %w", err)
	}

	if err := s.userRepo.UpdateRoles(ctx, userID, newRoles); err != nil {
		return nil, fmt.Errorf("failed to update roles: %w", err)
	}

	user.Roles = newRoles
	return user, nil
}

// CreateOAuthUser finds or creates an account for a verified OAuth identity.
// Existing local accounts with a matching email are linked to the provider.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email, authProvider, providerUserID string) (*domain.User, error) {
	if email == "" || providerUserID == "" {
		return nil, fmt.Errorf("%w: provider identity is incomplete", apperrors.ErrMissingInput)
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up provider identity: %w", err)
	}

	if user, err = s.userRepo.FindUserByEmail(ctx, email); err == nil {
		// Same mailbox, new provider: the account predates the OAuth link.
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	// OAuth accounts get an unguessable local credential so the password
	// path stays closed until the user explicitly resets it.
	randomSecret, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder credential: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder credential: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:   passwordHash,
		TokenVersion:   0,
		Roles:          []domain.Role{domain.RoleClient},
		AuthProvider:   domain.AuthProvider(authProvider),
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if name != "" {
		parts := strings.SplitN(name, " ", 2)
		pi := &domain.PersonalInformation{FirstName: parts[0]}
		if len(parts) == 2 {
			pi.LastName = parts[1]
		}
		newUser.PersonalInformation = pi
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create OAuth user: %w", err)
	}
	return &newUser, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", apperrors.ErrMissingInput)
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to delete user: %w", err)
	}

	return fmt.Sprintf("User id: %s has been deleted.", userID), nil
}
