package services

import (
	"context"
	"fmt"
	"time"

	"github.com/petadminhq/pet_admin_app/internal/apperrors"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
	"github.com/petadminhq/pet_admin_app/internal/platform/config"
	"github.com/petadminhq/pet_admin_app/internal/utils"
)

// tokenService implements the TokenSvcFacade. Both token kinds carry
// {userId, tokenVersion}; they differ only in signing secret and lifetime.
// Verification is a pure cryptographic check given the configured secrets;
// it never consults the store.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateAuthJWT(
		user.UserID,
		user.TokenVersion,
		s.cfg.AccessTokenSecret,
		s.cfg.AccessTokenExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a new refresh token for the given user.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateAuthJWT(
		user.UserID,
		user.TokenVersion,
		s.cfg.RefreshTokenSecret,
		s.cfg.RefreshTokenExpiryDuration,
		s.cfg.JWTIssuer,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, expiresAt, nil
}

// VerifyAccessToken validates an access token string.
func (s *tokenService) VerifyAccessToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	return verify(tokenString, s.cfg.AccessTokenSecret)
}

// VerifyRefreshToken validates a refresh token string.
func (s *tokenService) VerifyRefreshToken(ctx context.Context, tokenString string) (*domain.TokenClaims, error) {
	return verify(tokenString, s.cfg.RefreshTokenSecret)
}

func verify(tokenString, secret string) (*domain.TokenClaims, error) {
	parsed, err := utils.ParseAndValidateAuthJWT(tokenString, secret)
	if err != nil {
		// Signature, shape and expiry failures all collapse into one kind;
		// distinguishing them tells an attacker more than it tells us.
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTokenInvalid, err.Error())
	}
	claims := &domain.TokenClaims{
		UserID:       parsed.UserID,
		TokenVersion: parsed.TokenVersion,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}
