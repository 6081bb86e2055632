package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the claim set carried by both access and refresh tokens.
// TokenVersion is compared against the user's stored version on every
// protected call; a mismatch means the token has been revoked.
type AuthClaims struct {
	UserID       string `json:"userId"`
	TokenVersion int64  `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// GenerateAuthJWT signs a token carrying the user id and token version.
// The same helper serves access and refresh tokens; they differ only in
// secret and expiry.
func GenerateAuthJWT(userID string, tokenVersion int64, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(expiryDuration)
	claims := AuthClaims{
		UserID:       userID,
		TokenVersion: tokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateAuthJWT parses a token string and validates its signature and
// standard claims. It returns the AuthClaims if the token is valid.
func ParseAndValidateAuthJWT(tokenString string, secretKey string) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err // includes expiry and signature errors
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing userId claim")
	}
	return claims, nil
}
