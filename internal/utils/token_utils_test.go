package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/petadminhq/pet_admin_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "pet-admin-app-test"
)

func TestGenerateAuthJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateAuthJWT("user-1", 3, testSecret, 10*time.Minute, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(10*time.Minute), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateAuthJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, int64(3), claims.TokenVersion)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseAndValidateAuthJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateAuthJWT("user-1", 0, testSecret, 10*time.Minute, testIssuer)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateAuthJWT(token, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateAuthJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateAuthJWT("user-1", 0, testSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateAuthJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestParseAndValidateAuthJWT_MissingUserID(t *testing.T) {
	// A structurally valid token without the userId claim must be rejected.
	now := time.Now().UTC()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateAuthJWT(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateAuthJWT_WrongSigningMethod(t *testing.T) {
	// alg=none tokens must never pass.
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(10 * time.Minute)),
	})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateAuthJWT(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateAuthJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateAuthJWT("not.a.jwt", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
