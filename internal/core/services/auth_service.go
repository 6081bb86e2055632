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
	"github.com/petadminhq/pet_admin_app/internal/platform/config"
	"github.com/petadminhq/pet_admin_app/internal/utils"
)

// resetTokenBytes yields a 32-character hex token (128 bits of entropy).
const resetTokenBytes = 16

// authService composes the credential verifier, token service, user store
// and notifier into the signup/signin/signout/refresh/reset flows.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
	notifier portssvc.NotifierSvc
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade, notifier portssvc.NotifierSvc) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		notifier: notifier,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// issueTokenPair mints an access+refresh pair bound to the user's current
// token version. ExpiresIn is the access token's absolute expiry.
func (s *authService) issueTokenPair(ctx context.Context, user *domain.User) (*dto.AuthData, error) {
	accessToken, accessExpiry, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokenSvc.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthData{
		UserID:       user.UserID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    accessExpiry.Unix(),
	}, nil
}

func (s *authService) Signup(ctx context.Context, email, password string) (*dto.AuthData, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrMissingInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrMissingInput)
	}

	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already in use, please sign in instead", apperrors.ErrDuplicate)
	}

	if !utils.IsEmailValid(email) {
		return nil, fmt.Errorf("%w: email is invalid", apperrors.ErrValidation)
	}
	if !utils.IsPasswordValid(password) {
		return nil, fmt.Errorf("%w: password must be between 6 - 50 characters", apperrors.ErrValidation)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		TokenVersion: 0,
		Roles:        []domain.Role{domain.RoleClient},
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use, please sign in instead", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokenPair(ctx, &user)
}

func (s *authService) Signin(ctx context.Context, email, password string) (*dto.AuthData, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrMissingInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", apperrors.ErrMissingInput)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: email not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user for signin: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: email or password is invalid", apperrors.ErrNotAuthenticated)
	}

	// Token version is left unchanged: signing in does not revoke other
	// sessions, only signout does.
	return s.issueTokenPair(ctx, user)
}

// Signout revokes every outstanding token for the user. A request with no
// resolvable user is a no-op, not an error.
func (s *authService) Signout(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", nil
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up user for signout: %w", err)
	}

	if _, err := s.userRepo.IncrementTokenVersion(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to revoke tokens on signout: %w", err)
	}

	return "Signout Success.", nil
}

// Refresh rotates the token version on every exchange, so a refresh token
// is usable exactly once; reuse shows up as a version mismatch.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthData, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", apperrors.ErrMissingInput)
	}

	claims, err := s.tokenSvc.VerifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user for refresh: %w", err)
	}
	if user.DeletedAt != nil {
		return nil, fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, fmt.Errorf("%w", apperrors.ErrVersionMismatch)
	}

	newVersion, err := s.userRepo.IncrementTokenVersion(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate token version: %w", err)
	}
	user.TokenVersion = newVersion

	return s.issueTokenPair(ctx, user)
}

func (s *authService) RequestResetPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: email is required", apperrors.ErrMissingInput)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: email not found", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := time.Now().UTC().Add(s.cfg.ResetTokenExpiryDuration)

	// A new request supersedes any pending token for the user.
	if err := s.userRepo.SetResetPasswordToken(ctx, user.UserID, token, expiry); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf(`
		<div>
			<p>Please click below link to reset your password.</p>
			<a href='%s/?resetToken=%s' target='blank'>Click to reset password</a>
		</div>
	`, s.cfg.FrontendBaseURL, token)

	if err := s.notifier.Send(ctx, user.Email, "Reset password", body); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrNotificationFailed, err.Error())
	}

	return "Please check your email to reset password", nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if newPassword == "" {
		return "", fmt.Errorf("%w: password is required", apperrors.ErrMissingInput)
	}
	if token == "" {
		return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrMissingInput)
	}
	if !utils.IsPasswordValid(newPassword) {
		return "", fmt.Errorf("%w: password must be between 6 - 50 characters", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrNotFound)
		}
		return "", fmt.Errorf("failed to look up reset token: %w", err)
	}

	if user.ResetPasswordTokenExpiry == nil || time.Now().UTC().After(*user.ResetPasswordTokenExpiry) {
		return "", fmt.Errorf("%w: sorry, cannot proceed", apperrors.ErrTokenInvalid)
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash new password: %w", err)
	}

	// Clearing the reset fields makes the token single-use.
	if err := s.userRepo.ResetPassword(ctx, user.UserID, passwordHash); err != nil {
		return "", fmt.Errorf("failed to persist new password: %w", err)
	}

	return "Successfully reset password.", nil
}

// RequireAuthenticated resolves a verified claim set to a live user. The
// re-check of the stored token version on every protected call is what makes
// signout and refresh actually revoke previously issued tokens.
func (s *authService) RequireAuthenticated(ctx context.Context, claims *domain.TokenClaims) (*domain.User, error) {
	if claims == nil || claims.UserID == "" {
		return nil, fmt.Errorf("%w: please log in to proceed", apperrors.ErrNotAuthenticated)
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not authenticated", apperrors.ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("failed to load user for auth check: %w", err)
	}

	if user.DeletedAt != nil {
		return nil, fmt.Errorf("%w: user not authenticated", apperrors.ErrNotAuthenticated)
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, fmt.Errorf("%w: not authenticated", apperrors.ErrNotAuthenticated)
	}

	return user, nil
}
