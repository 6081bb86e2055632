package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/petadminhq/pet_admin_app/internal/core/domain"
)

// sessionClaimsKey is the key used to store the resolved token claims in the
// Gin context. Using a custom type prevents collisions.
const sessionClaimsKey = contextKey("sessionClaims")

// GetClaimsFromContext retrieves the token claims attached by the session
// resolver. A nil result means the request is anonymous.
func GetClaimsFromContext(c *gin.Context) *domain.TokenClaims {
	claimsVal, exists := c.Get(string(sessionClaimsKey))
	if !exists {
		// check in the request context as well
		if ctxVal := c.Request.Context().Value(sessionClaimsKey); ctxVal != nil {
			if claims, ok := ctxVal.(*domain.TokenClaims); ok {
				return claims
			}
		}
		return nil
	}

	claims, ok := claimsVal.(*domain.TokenClaims)
	if !ok {
		// This should not happen if the session resolver sets it correctly
		return nil
	}

	return claims
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	claims := GetClaimsFromContext(c)
	if claims == nil {
		return "", false
	}
	return claims.UserID, true
}
