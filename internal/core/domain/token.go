package domain

import "time"

// TokenClaims is the verified content of an access or refresh token.
// It is a tagged value: a nil *TokenClaims means "no identity attached",
// which is how an absent or unverifiable bearer token degrades to an
// anonymous request instead of an error.
type TokenClaims struct {
	UserID       string
	TokenVersion int64
	IssuedAt     time.Time
	ExpiresAt    time.Time
}
