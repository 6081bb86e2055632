package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
	"github.com/petadminhq/pet_admin_app/internal/core/services"
	"github.com/petadminhq/pet_admin_app/internal/middleware"
	"github.com/petadminhq/pet_admin_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:          "test-access-secret",
		AccessTokenExpiryDuration:  10 * time.Minute,
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: 30 * time.Minute,
		JWTIssuer:                  "pet-admin-app-test",
	}
}

// setupRouter wires the resolver in front of a probe handler that reports
// the claims it sees.
func setupRouter(cfg *config.Config) (*gin.Engine, *domain.TokenClaims) {
	gin.SetMode(gin.TestMode)
	tokenSvc := services.NewTokenService(cfg)

	var seen *domain.TokenClaims
	captured := &domain.TokenClaims{}

	r := gin.New()
	r.Use(middleware.SessionResolver(tokenSvc))
	r.GET("/probe", func(c *gin.Context) {
		seen = middleware.GetClaimsFromContext(c)
		if seen != nil {
			*captured = *seen
			c.JSON(http.StatusOK, gin.H{"userId": seen.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": nil})
	})
	return r, captured
}

func TestSessionResolver_ValidToken(t *testing.T) {
	cfg := testConfig()
	r, captured := setupRouter(cfg)

	tokenSvc := services.NewTokenService(cfg)
	user := &domain.User{UserID: "user-1", TokenVersion: 2}
	token, _, err := tokenSvc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", captured.UserID)
	assert.Equal(t, int64(2), captured.TokenVersion)
}

func TestSessionResolver_NoHeaderIsAnonymous(t *testing.T) {
	r, captured := setupRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Anonymous requests are not rejected by the resolver.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, captured.UserID)
}

func TestSessionResolver_GarbageTokenIsAnonymous(t *testing.T) {
	r, captured := setupRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, captured.UserID)
}

func TestSessionResolver_MalformedHeaderIsAnonymous(t *testing.T) {
	r, captured := setupRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, captured.UserID)
}

func TestSessionResolver_RefreshTokenNotAcceptedAsAccess(t *testing.T) {
	cfg := testConfig()
	r, captured := setupRouter(cfg)

	tokenSvc := services.NewTokenService(cfg)
	user := &domain.User{UserID: "user-1"}
	refreshToken, _, err := tokenSvc.GenerateRefreshToken(context.Background(), user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+refreshToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, captured.UserID)
}
