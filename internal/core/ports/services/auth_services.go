package services

import (
	"context"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token issuance and verification.
// Issuance encodes {userId, tokenVersion}; verification is a pure check
// against the configured secret and reports token validity only — whether
// the bearer is authenticated is the caller's concern.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a refresh token for the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// VerifyAccessToken validates an access token and returns its claims.
	VerifyAccessToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error)

	// VerifyRefreshToken validates a refresh token and returns its claims.
	VerifyRefreshToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error)
}

// AuthSvcFacade orchestrates the authentication flows.
type AuthSvcFacade interface {
	// Signup registers a new account and returns a fresh token pair.
	Signup(ctx context.Context, email, password string) (*dto.AuthData, error)

	// Signin verifies credentials and returns a fresh token pair.
	Signin(ctx context.Context, email, password string) (*dto.AuthData, error)

	// Signout revokes all outstanding tokens for the user by bumping the
	// token version. It returns an empty message, and no error, when no
	// user is resolvable.
	Signout(ctx context.Context, userID string) (string, error)

	// Refresh exchanges a refresh token for a new pair, rotating the token
	// version so each refresh token is usable exactly once.
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthData, error)

	// RequestResetPassword starts the reset flow and emails a reset link.
	RequestResetPassword(ctx context.Context, email string) (string, error)

	// ResetPassword consumes a pending reset token and sets a new password.
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)

	// RequireAuthenticated resolves the request identity to a stored user,
	// failing when no identity is attached, the user is missing or
	// deactivated, or the token version is stale.
	RequireAuthenticated(ctx context.Context, claims *domain.TokenClaims) (*domain.User, error)
}

// NotifierSvc delivers transactional mail. Implementations must report a
// non-accepted provider status as a failure.
type NotifierSvc interface {
	Send(ctx context.Context, toAddress, subject, htmlBody string) error
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
